package platform

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Organisation and application names used for the tool's own directories.
const (
	orgName = "4145"
	appName = "worbots_setup"
)

// Paths holds the directories package routines read and write.
type Paths struct {
	// Data is where the tool keeps downloaded installers and extracted programs.
	Data string
	// Config holds the tool's config.yaml.
	Config string
	// Roaming is %APPDATA%.
	Roaming string
	// Local is %LOCALAPPDATA%.
	Local string
	// ProgramFilesX86 is %ProgramFiles(x86)%.
	ProgramFilesX86 string
	// Public is %PUBLIC%, where WPILib installs its shared toolchain.
	Public string
	// System is %SystemRoot%\System32.
	System string
}

// DefaultPaths resolves the standard Windows locations. dataOverride replaces
// the data directory when set.
func DefaultPaths(dataOverride string) (Paths, error) {
	roaming, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, errors.Wrap(err, "failed to locate the roaming app data directory")
	}
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		if local, err = os.UserCacheDir(); err != nil {
			return Paths{}, errors.Wrap(err, "failed to locate the local app data directory")
		}
	}

	base := filepath.Join(roaming, orgName, appName)
	p := Paths{
		Data:            filepath.Join(base, "data"),
		Config:          filepath.Join(base, "config"),
		Roaming:         roaming,
		Local:           local,
		ProgramFilesX86: envOr("ProgramFiles(x86)", `C:\Program Files (x86)`),
		Public:          envOr("PUBLIC", `C:\Users\Public`),
		System:          filepath.Join(envOr("SystemRoot", `C:\Windows`), "System32"),
	}
	if dataOverride != "" {
		p.Data = dataOverride
	}
	return p, nil
}

// PackageDir returns, and creates, the data subdirectory for one package.
func (p Paths) PackageDir(id string) (string, error) {
	dir := filepath.Join(p.Data, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create data directory %s", dir)
	}
	return dir, nil
}

// LocalProgram is the per-user install location used by most Electron installers:
// %LOCALAPPDATA%\Programs\<dir>\<exe>.
func (p Paths) LocalProgram(dir, exe string) string {
	return filepath.Join(p.Local, "Programs", dir, exe)
}

// LocalData is %LOCALAPPDATA%\<dir>.
func (p Paths) LocalData(dir string) string {
	return filepath.Join(p.Local, dir)
}

// RoamingData is %APPDATA%\<dir>.
func (p Paths) RoamingData(dir string) string {
	return filepath.Join(p.Roaming, dir)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
