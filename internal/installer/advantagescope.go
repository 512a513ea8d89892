package installer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"worbots-setup/internal/assets"
	"worbots-setup/internal/catalog"
	"worbots-setup/internal/config"
)

var advantageScopeSource = githubSource{org: "Mechanical-Advantage", repo: "AdvantageScope", patterns: []string{"win-x64"}}

// advantageScopePrefs is AdvantageScope's prefs.json.
type advantageScopePrefs struct {
	Theme             string `json:"theme"`
	RioAddress        string `json:"rioAddress"`
	RioPath           string `json:"rioPath"`
	LiveMode          string `json:"liveMode"`
	LiveSubscribeMode string `json:"liveSubscribeMode"`
	RlogPort          int    `json:"rlogPort"`
}

func installAdvantageScope(ctx context.Context, env *catalog.Env) (string, error) {
	version, err := githubInstaller("advantagescope", advantageScopeSource, "")(ctx, env)
	if err != nil {
		return "", err
	}

	env.Out.Progress("Finished installer. Configuring")
	if err := configureAdvantageScope(env.Paths.RoamingData("AdvantageScope"), env.Config.AdvantageScope); err != nil {
		return "", errors.Wrap(err, "failed to configure")
	}
	return version, nil
}

// configureAdvantageScope points AdvantageScope at the team's robot and adds
// the joystick the drive team uses.
func configureAdvantageScope(dir string, cfg config.AdvantageScope) error {
	frcData := filepath.Join(dir, "frcData")
	if err := os.MkdirAll(frcData, 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", frcData)
	}

	prefs, err := json.MarshalIndent(advantageScopePrefs{
		Theme:             cfg.Theme,
		RioAddress:        cfg.RioAddress,
		RioPath:           cfg.RioPath,
		LiveMode:          cfg.LiveMode,
		LiveSubscribeMode: "low-bandwidth",
		RlogPort:          5800,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal AdvantageScope preferences")
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.json"), prefs, 0644); err != nil {
		return errors.Wrap(err, "failed to write AdvantageScope preferences")
	}

	if err := os.WriteFile(filepath.Join(frcData, "Joystick_Extreme3DPro.json"), assets.Extreme3DProConfig, 0644); err != nil {
		return errors.Wrap(err, "failed to create joystick config")
	}
	if err := os.WriteFile(filepath.Join(frcData, "Joystick_Extreme3DPro.png"), assets.Extreme3DProImage, 0644); err != nil {
		return errors.Wrap(err, "failed to create joystick image")
	}
	return nil
}
