package installer

import (
	"context"

	"worbots-setup/internal/catalog"
)

// The "rhc" releases carry the hardware client; the "FRC" asset bundles the
// offline FRC firmware.
var revSource = githubSource{org: "REVrobotics", repo: "REV-Software-Binaries", tagContains: "rhc", patterns: []string{"FRC"}}

// The installer is per-user, under the electron-builder product directory.
var revClientPath = localProgram("rev-hardware-client", "REV Hardware Client.exe")

// installREV runs the installer elevated because it installs device drivers.
func installREV(ctx context.Context, env *catalog.Env) (string, error) {
	rel, asset, err := findAsset(ctx, env, revSource)
	if err != nil {
		return "", err
	}
	path, err := download(ctx, env, "rev_client", asset.DownloadURL, "installer.exe")
	if err != nil {
		return "", err
	}

	env.Out.Progress("Starting installer")
	if err := env.Runner.Elevated(ctx, path, nil, true); err != nil {
		return "", err
	}
	env.Out.Instruction("The installer has started. Follow the steps it gives you")
	env.Out.ContinuePrompt()
	return rel.Tag, nil
}
