// Package config loads the tool's settings with viper: built-in defaults,
// then config.yaml, then WORBOTS_* environment variables.
package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"worbots-setup/internal/logger"
)

// FileName is the config file looked up in the tool's config directory.
const FileName = "config.yaml"

// EnvPrefix prefixes every environment override, e.g. WORBOTS_GITHUB_TOKEN.
const EnvPrefix = "WORBOTS"

// Default returns the configuration used when no file or environment overrides exist.
func Default() Config {
	return Config{
		Workers:    1,
		InstallAll: []string{"phoenix", "rev_client", "advantagescope", "grip", "limelight_finder"},
		WPILib:     WPILib{Year: "2023"},
		GameTools: GameTools{
			URL: "https://download.ni.com/support/nipkg/products/ni-f/ni-frc-2023-game-tools/23.1/online/ni-frc-2023-game-tools_23.1_online.exe",
		},
		AdvantageScope: AdvantageScope{
			Theme:      "system",
			RioAddress: "10.41.45.2",
			RioPath:    "/media/sda1/",
			LiveMode:   "nt4",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("install_all", d.InstallAll)
	v.SetDefault("github.token", d.GitHub.Token)
	v.SetDefault("github.api_url", d.GitHub.APIURL)
	v.SetDefault("wpilib.year", d.WPILib.Year)
	v.SetDefault("game_tools.url", d.GameTools.URL)
	v.SetDefault("advantagescope.theme", d.AdvantageScope.Theme)
	v.SetDefault("advantagescope.rio_address", d.AdvantageScope.RioAddress)
	v.SetDefault("advantagescope.rio_path", d.AdvantageScope.RioPath)
	v.SetDefault("advantagescope.live_mode", d.AdvantageScope.LiveMode)
}

// Load reads path on top of the defaults. A missing file is not an error.
// GITHUB_TOKEN is honoured when no token is configured otherwise.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		logger.Debug("[DEBUG] No config file at %s, using defaults\n", path)
	} else {
		logger.Debug("[DEBUG] Loaded config file %s\n", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config file %s", path)
	}
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return &cfg, nil
}

// Validate checks values viper cannot check by type alone.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.WPILib.Year == "" {
		return fmt.Errorf("wpilib.year must be set")
	}
	for i, p := range c.Custom {
		if p.ID == "" {
			return fmt.Errorf("custom_packages[%d]: id is required", i)
		}
		if strings.Count(p.Repo, "/") != 1 {
			return fmt.Errorf("custom package %s: repo must be org/repo, got %q", p.ID, p.Repo)
		}
		switch p.Kind {
		case KindInstaller, KindArchive:
		default:
			return fmt.Errorf("custom package %s: kind must be %q or %q, got %q", p.ID, KindInstaller, KindArchive, p.Kind)
		}
	}
	return nil
}

// Write saves cfg as YAML, creating the directory. The file may hold a token,
// so it is only readable by the owner.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}

// Dump writes cfg as YAML to w with the GitHub token masked.
func Dump(w io.Writer, cfg Config) error {
	if cfg.GitHub.Token != "" {
		cfg.GitHub.Token = "********"
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return enc.Close()
}
