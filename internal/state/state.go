package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"            // For file system operations like reading and writing files
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"worbots-setup/internal/logger"
)

// FileName is the state file kept in the data directory.
const FileName = "state.json"

// PackageState records one successful install done by this tool.
type PackageState struct {
	Version     string    `json:"version,omitempty"`     // Release tag the installer came from, if known
	InstalledAt time.Time `json:"installed_at"`          // When the install routine finished
	InstallDir  string    `json:"install_dir,omitempty"` // Data directory holding the downloaded files
}

// State is the on-disk document.
type State struct {
	Packages map[string]PackageState `json:"packages"` // Keyed by package id
}

// Store guards a State and the file it is persisted to. The GUI worker and
// the CLI both record installs through it.
type Store struct {
	path string

	mu sync.Mutex
	st State
}

// Load reads the state file at path. A missing or unreadable file yields an
// empty state so a damaged file never blocks installs.
func Load(path string) *Store {
	s := &Store{path: path, st: State{Packages: make(map[string]PackageState)}}

	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("[WARN] Failed to read state file %s: %v\n", path, err)
		}
		return s
	}

	var st State
	if err := json.Unmarshal(file, &st); err != nil {
		logger.Warn("[WARN] Ignoring malformed state file %s: %v\n", path, err)
		return s
	}
	if st.Packages != nil {
		s.st = st
	}
	return s
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Get returns the recorded state for id.
func (s *Store) Get(id string) (PackageState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.st.Packages[id]
	return ps, ok
}

// Installed returns the ids with a recorded install, sorted.
func (s *Store) Installed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.st.Packages))
	for id := range s.st.Packages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Record stores ps for id and saves the file.
func (s *Store) Record(id string, ps PackageState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Packages[id] = ps
	return s.save()
}

// Forget removes id and saves the file. Forgetting an unknown id is a no-op.
func (s *Store) Forget(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.Packages[id]; !ok {
		return nil
	}
	delete(s.st.Packages, id)
	return s.save()
}

// save writes the state as indented JSON. The caller holds mu.
func (s *Store) save() error {
	file, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal state")
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", s.path, string(file))

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", s.path)
	}
	if err := os.WriteFile(s.path, file, 0644); err != nil {
		return errors.Wrapf(err, "failed to write state file %s", s.path)
	}
	return nil
}
