package installer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"worbots-setup/internal/config"
)

func TestBuiltinTable(t *testing.T) {
	cfg := config.Default()
	r, err := NewRegistry(&cfg)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if got := len(r.IDs()); got != 29 {
		t.Errorf("built-in packages = %d, want 29", got)
	}

	for _, id := range cfg.InstallAll {
		if !r.CanInstall(id) {
			t.Errorf("install_all default %s is not installable", id)
		}
	}

	for _, d := range r.All() {
		if d.DisplayName == "" || d.Description == "" {
			t.Errorf("%s is missing display metadata", d.ID)
		}
		if !d.Installable() && !d.Launchable() {
			t.Errorf("%s can neither be installed nor launched", d.ID)
		}
	}
}

func TestBuiltinParents(t *testing.T) {
	cfg := config.Default()
	r, err := NewRegistry(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	children := func(parent string) []string {
		var ids []string
		for _, d := range r.Children(parent) {
			ids = append(ids, d.ID)
		}
		return ids
	}

	tests := map[string][]string{
		"phoenix": {"phoenix_tuner"},
		"wpilib": {"glass", "pathweaver", "team_number_setter", "shuffleboard", "data_log_tool",
			"outline_viewer", "robotbuilder", "sysid", "vscode"},
		"game_tools": {"ds_log_viewer", "driver_station", "radio_utility", "rio_imaging_tool"},
		"grip":       nil,
	}
	for parent, want := range tests {
		t.Run(parent, func(t *testing.T) {
			if diff := cmp.Diff(want, children(parent)); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
			for _, id := range want {
				if r.CanInstall(id) {
					t.Errorf("child %s is installable", id)
				}
			}
		})
	}
}

func TestBuiltinCapabilities(t *testing.T) {
	cfg := config.Default()
	r, err := NewRegistry(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id              string
		install, launch bool
	}{
		{"advantagescope", true, true},
		{"rev_client", true, true},
		{"wpilib", true, false},
		{"phoenix", true, false},
		{"game_tools", true, false},
		{"vscode", false, true},
		{"wpilib_docs", false, true},
		{"task_manager", false, true},
		{"limelight_finder", true, true},
	}
	for _, tt := range tests {
		if got := r.CanInstall(tt.id); got != tt.install {
			t.Errorf("CanInstall(%s) = %v, want %v", tt.id, got, tt.install)
		}
		if got := r.CanLaunch(tt.id); got != tt.launch {
			t.Errorf("CanLaunch(%s) = %v, want %v", tt.id, got, tt.launch)
		}
	}
}

func TestCustomPackageCollision(t *testing.T) {
	cfg := config.Default()
	cfg.Custom = []config.CustomPackage{{ID: "grip", Repo: "a/b", Kind: config.KindInstaller}}
	if _, err := NewRegistry(&cfg); err == nil {
		t.Fatal("custom package shadowing a built-in id was accepted")
	}
}
