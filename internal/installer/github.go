package installer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/logger"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/releases"
)

// githubSource says where a package's installer is published.
type githubSource struct {
	org, repo string
	// tagContains, when set, scans the releases list for a tag containing it
	// instead of using the latest release.
	tagContains string
	patterns    []string
}

func (s githubSource) String() string {
	return s.org + "/" + s.repo
}

// findAsset fetches release metadata for src and picks the first matching asset.
func findAsset(ctx context.Context, env *catalog.Env, src githubSource) (releases.Release, releases.Asset, error) {
	env.Out.Progress("Getting GitHub release")

	if src.tagContains == "" {
		rel, err := env.Releases.LatestRelease(ctx, src.org, src.repo)
		if err != nil {
			return releases.Release{}, releases.Asset{}, errors.Wrap(err, "failed to get GitHub release")
		}
		asset, ok := releases.SelectAsset(rel, src.patterns...)
		if !ok {
			return releases.Release{}, releases.Asset{}, &releases.AssetNotFoundError{Repo: src.String(), Tag: rel.Tag, Patterns: src.patterns}
		}
		logger.Debug("[DEBUG] Found matching asset: %s in %s\n", asset.Name, rel.Tag)
		return rel, asset, nil
	}

	all, err := env.Releases.AllReleases(ctx, src.org, src.repo)
	if err != nil {
		return releases.Release{}, releases.Asset{}, errors.Wrap(err, "failed to get GitHub releases")
	}
	rel, asset, ok := releases.FindAsset(all, src.tagContains, src.patterns...)
	if !ok {
		return releases.Release{}, releases.Asset{}, &releases.AssetNotFoundError{
			Repo:     src.String(),
			Tag:      "*" + src.tagContains + "*",
			Patterns: src.patterns,
		}
	}
	logger.Debug("[DEBUG] Found matching asset: %s in %s\n", asset.Name, rel.Tag)
	return rel, asset, nil
}

// download saves url as file inside the package's data directory.
func download(ctx context.Context, env *catalog.Env, id, url, file string) (string, error) {
	dir, err := env.Paths.PackageDir(id)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(dir, file)

	env.Out.Progress("Downloading installer")
	if _, err := env.Releases.Download(ctx, url, dest); err != nil {
		return "", errors.Wrap(err, "failed to download installer")
	}
	return dest, nil
}

// runInstaller starts a downloaded installer and waits for it to exit.
// MSI packages go through msiexec since they are not executables.
func runInstaller(ctx context.Context, env *catalog.Env, path string) error {
	env.Out.Progress("Starting installer")
	c := platform.Command{Path: path}
	if strings.EqualFold(filepath.Ext(path), ".msi") {
		c = platform.Command{Path: "msiexec", Args: []string{"/i", path}}
	}
	return env.Runner.Run(ctx, c)
}

// installerFile names the downloaded installer after the asset's extension.
func installerFile(assetName string) string {
	ext := strings.ToLower(filepath.Ext(assetName))
	if ext == "" {
		ext = ".exe"
	}
	return "installer" + ext
}

// githubInstaller is the routine most vendors share: download the matching
// asset of the newest release and run it. instruction, when set, is shown
// before the installer starts.
func githubInstaller(id string, src githubSource, instruction string) catalog.InstallFunc {
	return func(ctx context.Context, env *catalog.Env) (string, error) {
		rel, asset, err := findAsset(ctx, env, src)
		if err != nil {
			return "", err
		}
		path, err := download(ctx, env, id, asset.DownloadURL, installerFile(asset.Name))
		if err != nil {
			return "", err
		}
		if instruction != "" {
			env.Out.Instruction(instruction)
		}
		if err := runInstaller(ctx, env, path); err != nil {
			return "", err
		}
		return rel.Tag, nil
	}
}

// urlInstaller downloads an installer from a fixed address and runs it.
// Fixed addresses carry no version.
func urlInstaller(id, url string) catalog.InstallFunc {
	return func(ctx context.Context, env *catalog.Env) (string, error) {
		path, err := download(ctx, env, id, url, "installer.exe")
		if err != nil {
			return "", err
		}
		return "", runInstaller(ctx, env, path)
	}
}
