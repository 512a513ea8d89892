package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/config"
	"worbots-setup/internal/installer"
	"worbots-setup/internal/logger"
	"worbots-setup/internal/output"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/releases"
	"worbots-setup/internal/state"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath overrides the config file location. Empty means the default
// %APPDATA%\4145\worbots_setup\config\config.yaml.
var configPath string

// rootCmd is the base command for the CLI tool `worbots-setup`.
var rootCmd = &cobra.Command{
	Use:   "worbots-setup",
	Short: "Setup tool for WorBots 4145 driver station and programming laptops",
	Long: `worbots-setup installs and launches the programs an FRC team laptop needs:
WPILib, the NI game tools, vendor hardware clients and dashboards.

Run "worbots-setup app" for the graphical version.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers flags and runs the selected command. Failures print
// their full cause chain to stderr and exit with status 1.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// session is everything a command needs once the config has been read.
type session struct {
	configPath string
	cfg        *config.Config
	reg        *catalog.Registry
	env        *catalog.Env
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, platform.Paths, error) {
	paths, err := platform.DefaultPaths("")
	if err != nil {
		return "", platform.Paths{}, err
	}
	path := configPath
	if path == "" {
		path = filepath.Join(paths.Config, config.FileName)
	}
	return path, paths, nil
}

// newSession loads the config and wires the registry to real collaborators.
func newSession() (*session, error) {
	path, paths, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.DataDir != "" {
		paths.Data = cfg.DataDir
	}

	client, err := releases.NewClient(releases.Options{Token: cfg.GitHub.Token, APIURL: cfg.GitHub.APIURL})
	if err != nil {
		return nil, err
	}
	reg, err := installer.NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("[DEBUG] Data directory: %s\n", paths.Data)
	return &session{
		configPath: path,
		cfg:        cfg,
		reg:        reg,
		env: &catalog.Env{
			Releases: client,
			Runner:   platform.ExecRunner{},
			Paths:    paths,
			Out:      output.NewConsole(),
			Config:   cfg,
			State:    state.Load(filepath.Join(paths.Data, state.FileName)),
		},
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
