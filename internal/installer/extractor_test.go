package installer

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestExtractArchive(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     func(t *testing.T) []byte
		stripTop bool
		want     map[string]string
	}{
		{
			name: "zip strip top",
			file: "app.zip",
			data: func(t *testing.T) []byte {
				return zipBytes(t, map[string]string{"app-1.0/app.exe": "MZ", "app-1.0/lib/x.dll": "dll"})
			},
			stripTop: true,
			want:     map[string]string{"app.exe": "MZ", "lib/x.dll": "dll"},
		},
		{
			name: "zip keep top",
			file: "app.zip",
			data: func(t *testing.T) []byte {
				return zipBytes(t, map[string]string{"app-1.0/app.exe": "MZ"})
			},
			want: map[string]string{"app-1.0/app.exe": "MZ"},
		},
		{
			name: "zip several roots are not stripped",
			file: "app.zip",
			data: func(t *testing.T) []byte {
				return zipBytes(t, map[string]string{"a/one.txt": "1", "b/two.txt": "2"})
			},
			stripTop: true,
			want:     map[string]string{"a/one.txt": "1", "b/two.txt": "2"},
		},
		{
			name: "tar.gz",
			file: "app.tar.gz",
			data: func(t *testing.T) []byte {
				return tarGzBytes(t, map[string]string{"tool/bin/tool": "#!"})
			},
			stripTop: true,
			want:     map[string]string{"bin/tool": "#!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := writeFile(t, filepath.Join(dir, tt.file), tt.data(t))
			dest := filepath.Join(dir, "out")

			if err := ExtractArchive(src, dest, tt.stripTop); err != nil {
				t.Fatalf("ExtractArchive: %v", err)
			}
			for name, body := range tt.want {
				if got := readFile(t, filepath.Join(dest, filepath.FromSlash(name))); got != body {
					t.Errorf("%s = %q, want %q", name, got, body)
				}
			}
			if _, err := os.Stat(dest + ".tmp"); !os.IsNotExist(err) {
				t.Errorf("staging directory left behind: %v", err)
			}
		})
	}
}

func TestExtractArchiveReplacesPrevious(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dest, "stale.txt"), []byte("old"))

	src := writeFile(t, filepath.Join(dir, "new.zip"), zipBytes(t, map[string]string{"fresh.txt": "new"}))
	if err := ExtractArchive(src, dest, false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dest, "stale.txt")); !os.IsNotExist(err) {
		t.Error("previous extraction was not replaced")
	}
}

func TestExtractArchiveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("../evil.txt")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Write([]byte("x"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	src := writeFile(t, filepath.Join(dir, "evil.zip"), buf.Bytes())

	if err := ExtractArchive(src, filepath.Join(dir, "out"), false); err == nil {
		t.Fatal("path traversal entry was extracted")
	}
	if _, err := os.Stat(filepath.Join(dir, "evil.txt")); !os.IsNotExist(err) {
		t.Error("file written outside the destination")
	}
}

func TestExtractArchiveUnsupported(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "setup.exe"), []byte("MZ"))
	if err := ExtractArchive(src, filepath.Join(dir, "out"), false); err == nil {
		t.Fatal("exe accepted as an archive")
	}
}

func TestIsArchive(t *testing.T) {
	for name, want := range map[string]bool{
		"a.zip": true, "a.7z": true, "a.tar.xz": true, "A.TGZ": true, "a.tar.bz2": true,
		"a.exe": false, "a.msi": false, "a.iso": false,
	} {
		if got := IsArchive(name); got != want {
			t.Errorf("IsArchive(%q) = %v, want %v", name, got, want)
		}
	}
}
