package installer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/config"
	"worbots-setup/internal/logger"
)

// Custom turns a custom_packages entry into a descriptor. Installer kinds
// download and run the asset; archive kinds unpack it into the data
// directory under "extracted".
func Custom(p config.CustomPackage) catalog.Descriptor {
	org, repo, _ := strings.Cut(p.Repo, "/")
	src := githubSource{org: org, repo: repo, tagContains: p.TagContains, patterns: p.Patterns}

	name := p.DisplayName
	if name == "" {
		name = p.ID
	}
	m := meta(p.ID, name, p.Description, nil)

	var install catalog.InstallFunc
	switch p.Kind {
	case config.KindArchive:
		install = archiveInstaller(p.ID, src)
	default:
		install = githubInstaller(p.ID, src, "")
	}

	return catalog.Standalone(m, install, customLauncher(p))
}

// archiveInstaller downloads an archive asset and extracts it, stripping a
// single top-level directory.
func archiveInstaller(id string, src githubSource) catalog.InstallFunc {
	return func(ctx context.Context, env *catalog.Env) (string, error) {
		rel, asset, err := findAsset(ctx, env, src)
		if err != nil {
			return "", err
		}
		if !IsArchive(asset.Name) {
			return "", errors.Errorf("asset %s of %s is not a supported archive", asset.Name, src)
		}
		archive, err := download(ctx, env, id, asset.DownloadURL, filepath.Base(asset.Name))
		if err != nil {
			return "", err
		}

		env.Out.Progress("Extracting archive")
		dest := filepath.Join(filepath.Dir(archive), "extracted")
		if err := ExtractArchive(archive, dest, true); err != nil {
			return "", errors.Wrap(err, "failed to extract archive")
		}
		logger.Debug("[DEBUG] Extracted %s to %s\n", asset.Name, dest)
		return rel.Tag, nil
	}
}

// customLauncher resolves Launch: relative to the extraction directory for
// archives, and relative to %LOCALAPPDATA%\Programs for installers unless it
// is absolute. No Launch means the package is install-only.
func customLauncher(p config.CustomPackage) catalog.LaunchFunc {
	if p.Launch == "" {
		return nil
	}
	path := func(env *catalog.Env) string {
		launch := filepath.FromSlash(p.Launch)
		switch {
		case filepath.IsAbs(launch):
			return launch
		case p.Kind == config.KindArchive:
			return packageData(p.ID, "extracted", launch)(env)
		default:
			return filepath.Join(env.Paths.Local, "Programs", launch)
		}
	}
	if p.Elevated {
		return startElevated(path, false)
	}
	return start(path)
}
