package config

// Config is the effective configuration after merging defaults, config.yaml
// and WORBOTS_* environment variables.
type Config struct {
	// DataDir overrides where installers are downloaded and programs extracted.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir,omitempty"`
	// Workers is the size of the GUI's background pool. One keeps actions sequential.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// InstallAll lists the package ids installed by `install-all`.
	InstallAll []string `mapstructure:"install_all" yaml:"install_all"`

	GitHub         GitHub          `mapstructure:"github" yaml:"github"`
	WPILib         WPILib          `mapstructure:"wpilib" yaml:"wpilib"`
	GameTools      GameTools       `mapstructure:"game_tools" yaml:"game_tools"`
	AdvantageScope AdvantageScope  `mapstructure:"advantagescope" yaml:"advantagescope"`
	Custom         []CustomPackage `mapstructure:"custom_packages" yaml:"custom_packages,omitempty"`
}

// GitHub configures the release API client.
// - Token: optional; raises the anonymous rate limit.
// - APIURL: optional; overrides https://api.github.com/.
type GitHub struct {
	Token  string `mapstructure:"token" yaml:"token,omitempty"`
	APIURL string `mapstructure:"api_url" yaml:"api_url,omitempty"`
}

// WPILib selects which season's installer and tool paths to use.
type WPILib struct {
	Year string `mapstructure:"year" yaml:"year"`
}

// GameTools points at the NI FRC Game Tools online installer.
type GameTools struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// AdvantageScope holds the preferences written to prefs.json after install.
type AdvantageScope struct {
	Theme      string `mapstructure:"theme" yaml:"theme"`
	RioAddress string `mapstructure:"rio_address" yaml:"rio_address"`
	RioPath    string `mapstructure:"rio_path" yaml:"rio_path"`
	LiveMode   string `mapstructure:"live_mode" yaml:"live_mode"`
}

// Kinds of custom package.
const (
	// KindInstaller downloads an executable and runs it.
	KindInstaller = "installer"
	// KindArchive downloads an archive and extracts it into the data directory.
	KindArchive = "archive"
)

// CustomPackage describes an extra package sourced from a GitHub release.
// - Repo: "org/repo" on GitHub.
// - TagContains: when set, the releases list is scanned for a tag containing it;
//   otherwise the latest release is used.
// - Patterns: every string must appear in the asset name.
// - Launch: for archives, the program to start, relative to the extraction directory;
//   for installers, an absolute path or a path under %LOCALAPPDATA%\Programs.
type CustomPackage struct {
	ID          string   `mapstructure:"id" yaml:"id"`
	DisplayName string   `mapstructure:"display_name" yaml:"display_name"`
	Description string   `mapstructure:"description" yaml:"description"`
	Repo        string   `mapstructure:"repo" yaml:"repo"`
	TagContains string   `mapstructure:"tag_contains" yaml:"tag_contains,omitempty"`
	Patterns    []string `mapstructure:"patterns" yaml:"patterns"`
	Kind        string   `mapstructure:"kind" yaml:"kind"`
	Launch      string   `mapstructure:"launch" yaml:"launch,omitempty"`
	Elevated    bool     `mapstructure:"elevated" yaml:"elevated,omitempty"`
}
