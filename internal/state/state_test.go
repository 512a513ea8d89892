package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissing(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), FileName))
	if got := s.Installed(); len(got) != 0 {
		t.Errorf("Installed() = %v, want empty", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := Load(path)
	if got := s.Installed(); len(got) != 0 {
		t.Errorf("Installed() = %v, want empty", got)
	}
	// A damaged file must not prevent new records.
	if err := s.Record("grip", PackageState{}); err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestRecordPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", FileName)
	at := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)

	s := Load(path)
	if err := s.Record("wpilib", PackageState{Version: "v2023.4.3", InstalledAt: at}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record("advantagescope", PackageState{Version: "v3.0.0", InstalledAt: at, InstallDir: "/d/advantagescope"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	reloaded := Load(path)
	if diff := cmp.Diff([]string{"advantagescope", "wpilib"}, reloaded.Installed()); diff != "" {
		t.Errorf("Installed() mismatch (-want +got):\n%s", diff)
	}
	got, ok := reloaded.Get("wpilib")
	if !ok {
		t.Fatal("wpilib missing after reload")
	}
	if diff := cmp.Diff(PackageState{Version: "v2023.4.3", InstalledAt: at}, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	if err := reloaded.Forget("wpilib"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	if err := reloaded.Forget("never-installed"); err != nil {
		t.Fatalf("Forget unknown: %v", err)
	}
	if _, ok := Load(path).Get("wpilib"); ok {
		t.Error("wpilib still recorded after Forget")
	}
}
