package ui

import (
	"fmt"
	"strings"

	"worbots-setup/internal/catalog"
	"worbots-setup/internal/state"
)

// details is what the right-hand pane shows for one package.
type details struct {
	Name        string
	Description string
	// Note explains why Install is missing, or is empty.
	Note string
	// Includes names the programs that come with this package's installer.
	Includes   string
	Installed  string
	CanInstall bool
	CanLaunch  bool
}

func describe(reg *catalog.Registry, d catalog.Descriptor, st *state.Store) details {
	out := details{
		Name:        d.DisplayName,
		Description: d.Description,
		CanInstall:  d.Installable(),
		CanLaunch:   d.Launchable(),
	}

	if parent, ok, _ := reg.ParentOf(d.ID); ok {
		out.Note = fmt.Sprintf("Installed as part of %s", parent.DisplayName)
	} else if !d.Installable() {
		out.Note = "Nothing to install"
	}

	var names []string
	for _, c := range reg.Children(d.ID) {
		names = append(names, c.DisplayName)
	}
	if len(names) > 0 {
		out.Includes = "Includes " + strings.Join(names, ", ")
	}

	id := d.ID
	if parent, ok := d.Parent(); ok {
		id = parent
	}
	if st != nil {
		if ps, ok := st.Get(id); ok {
			out.Installed = "Installed " + ps.InstalledAt.Local().Format("2006-01-02")
			if ps.Version != "" {
				out.Installed += " (" + ps.Version + ")"
			}
		}
	}
	return out
}
