package installer

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"worbots-setup/internal/logger"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/state"
)

// Clean removes the downloaded installers and extracted files of ids from the
// data directory and forgets their state entries. With no ids every package
// directory is removed and the state is emptied. Programs that installers
// put elsewhere on the machine are left alone; use Windows' own uninstaller
// for those.
func Clean(paths platform.Paths, st *state.Store, ids []string) ([]string, error) {
	if len(ids) == 0 {
		entries, err := os.ReadDir(paths.Data)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read data directory %s", paths.Data)
		}
		for _, e := range entries {
			if e.IsDir() {
				ids = append(ids, e.Name())
			}
		}
		ids = appendMissing(ids, st.Installed())
	}

	var removed []string
	for _, id := range ids {
		dir := filepath.Join(paths.Data, id)
		_, statErr := os.Stat(dir)
		if statErr == nil {
			logger.Info("[INFO] Removing %s\n", dir)
			if err := os.RemoveAll(dir); err != nil {
				return removed, errors.Wrapf(err, "failed to remove %s", dir)
			}
		}

		_, recorded := st.Get(id)
		if err := st.Forget(id); err != nil {
			return removed, err
		}
		if statErr == nil || recorded {
			removed = append(removed, id)
		} else {
			logger.Debug("[DEBUG] Nothing to clean for %s\n", id)
		}
	}
	return removed, nil
}

func appendMissing(ids, more []string) []string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range more {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
