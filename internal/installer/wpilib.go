package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/platform"
)

// installWPILib downloads the season's installer ISO, mounts it and runs the
// installer from the mounted drive.
func installWPILib(ctx context.Context, env *catalog.Env) (string, error) {
	src := githubSource{
		org:         "wpilibsuite",
		repo:        "allwpilib",
		tagContains: env.Config.WPILib.Year,
		patterns:    []string{"Windows"},
	}
	rel, asset, err := findAsset(ctx, env, src)
	if err != nil {
		return "", err
	}
	iso, err := download(ctx, env, "wpilib", asset.DownloadURL, "installer.iso")
	if err != nil {
		return "", err
	}

	env.Out.Progress("Extracting installer")
	drive, err := mountImage(ctx, env.Runner, iso)
	if err != nil {
		return "", errors.Wrap(err, "failed to mount installer image")
	}

	if err := runInstaller(ctx, env, drive+":/WPILibInstaller.exe"); err != nil {
		return "", err
	}
	return rel.Tag, nil
}

// mountImage mounts an ISO with PowerShell and returns its drive letter.
func mountImage(ctx context.Context, r platform.Runner, iso string) (string, error) {
	script := fmt.Sprintf("$mountResult = Mount-DiskImage -ImagePath '%s' -PassThru; ($mountResult | Get-Volume).DriveLetter",
		strings.ReplaceAll(iso, "'", "''"))
	out, err := r.Output(ctx, platform.Command{Path: "powershell.exe", Args: []string{"-command", script}})
	if err != nil {
		return "", err
	}
	drive := strings.TrimSpace(out)
	if len(drive) != 1 {
		return "", fmt.Errorf("unexpected drive letter %q from Mount-DiskImage", drive)
	}
	return drive, nil
}

func wpilibDir(env *catalog.Env) string {
	return filepath.Join(env.Paths.Public, "wpilib", env.Config.WPILib.Year)
}

func launchVSCode(ctx context.Context, env *catalog.Env) error {
	return env.Runner.Start(platform.Command{Path: filepath.Join(wpilibDir(env), "vscode", "Code.exe")})
}

// wpilibTool launches one of the .vbs wrappers WPILib puts in its tools directory.
func wpilibTool(script string) catalog.LaunchFunc {
	return func(ctx context.Context, env *catalog.Env) error {
		return env.Runner.Start(platform.Command{
			Path: "cscript",
			Args: []string{filepath.Join(wpilibDir(env), "tools", script)},
		})
	}
}
