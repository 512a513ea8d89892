package installer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"worbots-setup/internal/config"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/platform/platformtest"
)

func TestBuiltinLaunches(t *testing.T) {
	probe := newTestEnv(t)
	p := probe.Paths
	wpilib := filepath.Join(p.Public, "wpilib", "2023")

	tests := []struct {
		id   string
		want platformtest.Call
	}{
		{"advantagescope", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(p.Local, "Programs", "advantagescope", "AdvantageScope.exe")}}},
		{"rev_client", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(p.Local, "Programs", "rev-hardware-client", "REV Hardware Client.exe")}}},
		{"cachecad", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(p.Local, "Programs", "CacheCAD", "CacheCAD_GUI.exe"),
			Dir:  filepath.Join(p.Local, "Programs", "CacheCAD")}}},
		{"grip", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(p.Local, "GRIP", "GRIP.exe")}}},
		{"pathplanner", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(p.Data, "pathplanner", "extracted", "pathplanner.exe")}}},
		{"vscode", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(wpilib, "vscode", "Code.exe")}}},
		{"glass", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: "cscript", Args: []string{filepath.Join(wpilib, "tools", "Glass.vbs")}}}},
		{"team_number_setter", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: "cscript", Args: []string{filepath.Join(wpilib, "tools", "roboRIOTeamNumberSetter.vbs")}}}},
		{"driver_station", platformtest.Call{Kind: "elevated", Command: platform.Command{
			Path: filepath.Join(p.ProgramFilesX86, "FRC Driver Station", "DriverStation.exe")}}},
		{"ds_log_viewer", platformtest.Call{Kind: "start", Command: platform.Command{
			Path: filepath.Join(p.ProgramFilesX86, "FRC Driver Station", "DS_LogFileViewer.exe")}}},
		{"task_manager", platformtest.Call{Kind: "elevated", Wait: true, Command: platform.Command{
			Path: filepath.Join(p.System, "Taskmgr.exe")}}},
		{"wpilib_docs", platformtest.Call{Kind: "open", Wait: true, Command: platform.Command{
			Args: []string{"https://docs.wpilib.org/en/stable/index.html"}}}},
		{"worbots_github", platformtest.Call{Kind: "open", Wait: true, Command: platform.Command{
			Args: []string{"https://github.com/Worthington-Robotics"}}}},
	}

	cfg := config.Default()
	r, err := NewRegistry(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			env := newTestEnv(t)
			env.Paths = p
			if err := r.Launch(context.Background(), tt.id, env.Env); err != nil {
				t.Fatalf("Launch: %v", err)
			}
			if diff := cmp.Diff([]platformtest.Call{tt.want}, env.rec.Snapshot()); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWPILibYearFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.Config.WPILib.Year = "2024"

	if err := launchVSCode(context.Background(), env.Env); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(env.Paths.Public, "wpilib", "2024", "vscode", "Code.exe")
	if got := env.rec.Snapshot()[0].Command.Path; got != want {
		t.Errorf("path = %s, want %s", got, want)
	}
}
