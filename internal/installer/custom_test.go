package installer

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"worbots-setup/internal/config"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/platform/platformtest"
	"worbots-setup/internal/releases"
)

func TestCustomArchivePackage(t *testing.T) {
	env := newTestEnv(t)
	p := config.CustomPackage{
		ID:       "scouting",
		Repo:     "Worthington-Robotics/scouting-app",
		Patterns: []string{"windows"},
		Kind:     config.KindArchive,
		Launch:   "bin/scouting.exe",
	}
	a := asset("scouting-windows.tar.gz")
	env.src.latest[p.Repo] = releases.Release{Tag: "v0.3.0", Assets: []releases.Asset{asset("scouting-linux.tar.gz"), a}}
	env.src.files[a.DownloadURL] = tarGzBytes(t, map[string]string{
		"scouting-v0.3.0/bin/scouting.exe": "MZ",
		"scouting-v0.3.0/README.md":        "hi",
	})

	d := Custom(p)
	if d.DisplayName != "scouting" {
		t.Errorf("DisplayName = %q, want the id as fallback", d.DisplayName)
	}
	if !d.Installable() || !d.Launchable() {
		t.Fatalf("custom package capabilities: install=%v launch=%v", d.Installable(), d.Launchable())
	}

	version, err := archiveInstaller(p.ID, githubSource{org: "Worthington-Robotics", repo: "scouting-app", patterns: p.Patterns})(context.Background(), env.Env)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if version != "v0.3.0" {
		t.Errorf("version = %q", version)
	}
	exe := filepath.Join(env.Paths.Data, "scouting", "extracted", "bin", "scouting.exe")
	if _, err := os.Stat(exe); err != nil {
		t.Fatalf("extracted program: %v", err)
	}

	if err := customLauncher(p)(context.Background(), env.Env); err != nil {
		t.Fatal(err)
	}
	want := []platformtest.Call{{Kind: "start", Command: platform.Command{Path: exe}}}
	if diff := cmp.Diff(want, env.rec.Snapshot()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomArchiveRejectsInstaller(t *testing.T) {
	env := newTestEnv(t)
	env.src.latest["a/b"] = releases.Release{Tag: "v1", Assets: []releases.Asset{asset("b-setup.exe")}}

	_, err := archiveInstaller("b", githubSource{org: "a", repo: "b"})(context.Background(), env.Env)
	if err == nil {
		t.Fatal("an .exe was accepted as an archive")
	}
	if len(env.src.downloads) != 0 {
		t.Error("downloaded a non-archive asset")
	}
}

func TestCustomLauncher(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		p    config.CustomPackage
		want []platformtest.Call
	}{
		{
			name: "no launch",
			p:    config.CustomPackage{ID: "x", Kind: config.KindInstaller},
		},
		{
			name: "installer under local programs",
			p:    config.CustomPackage{ID: "x", Kind: config.KindInstaller, Launch: "Elastic/elastic.exe"},
			want: []platformtest.Call{{Kind: "start", Command: platform.Command{
				Path: filepath.Join(env.Paths.Local, "Programs", "Elastic", "elastic.exe")}}},
		},
		{
			name: "elevated absolute",
			p:    config.CustomPackage{ID: "x", Kind: config.KindInstaller, Launch: filepath.Join(env.Paths.System, "tool.exe"), Elevated: true},
			want: []platformtest.Call{{Kind: "elevated", Command: platform.Command{
				Path: filepath.Join(env.Paths.System, "tool.exe")}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.rec.Calls = nil
			launch := customLauncher(tt.p)
			if tt.want == nil {
				if launch != nil {
					t.Fatal("package without launch is launchable")
				}
				return
			}
			if err := launch(context.Background(), env.Env); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, env.rec.Snapshot()); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func tarGzBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, body := range files {
		hdr := &tar.Header{Name: name, Mode: 0755, Size: int64(len(body)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
