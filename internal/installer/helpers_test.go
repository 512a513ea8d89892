package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/config"
	"worbots-setup/internal/output"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/platform/platformtest"
	"worbots-setup/internal/releases"
	"worbots-setup/internal/state"
)

// fakeSource serves canned release metadata and writes canned bytes on Download.
type fakeSource struct {
	latest map[string]releases.Release
	all    map[string][]releases.Release
	files  map[string][]byte

	mu        sync.Mutex
	downloads []string
}

func (f *fakeSource) LatestRelease(_ context.Context, org, repo string) (releases.Release, error) {
	rel, ok := f.latest[org+"/"+repo]
	if !ok {
		return releases.Release{}, &releases.HTTPError{URL: org + "/" + repo, Status: 404}
	}
	return rel, nil
}

func (f *fakeSource) AllReleases(_ context.Context, org, repo string) ([]releases.Release, error) {
	return f.all[org+"/"+repo], nil
}

func (f *fakeSource) Download(_ context.Context, url, dest string) (int64, error) {
	f.mu.Lock()
	f.downloads = append(f.downloads, url)
	f.mu.Unlock()

	body, ok := f.files[url]
	if !ok {
		body = []byte("MZ installer for " + url)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, err
	}
	return int64(len(body)), os.WriteFile(dest, body, 0644)
}

// transcript records everything written to an Output.
type transcript struct {
	lines []string
}

func (t *transcript) Progress(msg string)    { t.lines = append(t.lines, "progress: "+msg) }
func (t *transcript) Success(msg string)     { t.lines = append(t.lines, "success: "+msg) }
func (t *transcript) Instruction(msg string) { t.lines = append(t.lines, "instruction: "+msg) }
func (t *transcript) ContinuePrompt()        { t.lines = append(t.lines, "prompt") }

var _ output.Output = (*transcript)(nil)

type testEnv struct {
	*catalog.Env
	src *fakeSource
	rec *platformtest.Recorder
	out *transcript
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	src := &fakeSource{latest: map[string]releases.Release{}, all: map[string][]releases.Release{}, files: map[string][]byte{}}
	rec := &platformtest.Recorder{}
	out := &transcript{}

	paths := platform.Paths{
		Data:            filepath.Join(root, "data"),
		Config:          filepath.Join(root, "config"),
		Roaming:         filepath.Join(root, "Roaming"),
		Local:           filepath.Join(root, "Local"),
		ProgramFilesX86: filepath.Join(root, "Program Files (x86)"),
		Public:          filepath.Join(root, "Public"),
		System:          filepath.Join(root, "System32"),
	}
	return testEnv{
		Env: &catalog.Env{
			Releases: src,
			Runner:   rec,
			Paths:    paths,
			Out:      out,
			Config:   &cfg,
			State:    state.Load(filepath.Join(paths.Data, state.FileName)),
		},
		src: src,
		rec: rec,
		out: out,
	}
}

func asset(name string) releases.Asset {
	return releases.Asset{Name: name, DownloadURL: fmt.Sprintf("https://example.com/dl/%s", name)}
}
