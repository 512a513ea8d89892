package catalog

import (
	"context"

	"worbots-setup/internal/config"
	"worbots-setup/internal/output"
	"worbots-setup/internal/platform"
	"worbots-setup/internal/releases"
	"worbots-setup/internal/state"
)

// ReleaseSource is the part of releases.Client that install routines use.
type ReleaseSource interface {
	LatestRelease(ctx context.Context, org, repo string) (releases.Release, error)
	AllReleases(ctx context.Context, org, repo string) ([]releases.Release, error)
	Download(ctx context.Context, url, destPath string) (int64, error)
}

// Env carries the collaborators package routines need.
type Env struct {
	Releases ReleaseSource
	Runner   platform.Runner
	Paths    platform.Paths
	Out      output.Output
	Config   *config.Config
	State    *state.Store
}

// InstallFunc installs a package and returns the version it installed, or ""
// when the source has no version (fixed download URLs).
type InstallFunc func(ctx context.Context, env *Env) (version string, err error)

// LaunchFunc starts an installed package.
type LaunchFunc func(ctx context.Context, env *Env) error

// Meta is the display metadata of a package.
type Meta struct {
	// ID is the unique key used on the command line and in the state file.
	ID          string
	DisplayName string
	Description string
	// Icon is an optional PNG shown by the GUI. The registry keeps its own copy.
	Icon []byte
}

// Descriptor is one package. Construct it with Standalone, Child or Shortcut
// so a package with a parent can never be installable.
type Descriptor struct {
	Meta

	parent  string
	install InstallFunc
	launch  LaunchFunc
}

// Standalone is a top-level package. It is installable when install is non-nil
// and launchable when launch is non-nil.
func Standalone(meta Meta, install InstallFunc, launch LaunchFunc) Descriptor {
	return Descriptor{Meta: meta, install: install, launch: launch}
}

// Child is a program that arrives with its parent's installer. It can only be launched.
func Child(meta Meta, parent string, launch LaunchFunc) Descriptor {
	return Descriptor{Meta: meta, parent: parent, launch: launch}
}

// Shortcut is a launch-only entry with nothing to install, like a documentation link.
func Shortcut(meta Meta, launch LaunchFunc) Descriptor {
	return Descriptor{Meta: meta, launch: launch}
}

// Parent returns the id of the package that installs this one.
func (d Descriptor) Parent() (string, bool) {
	return d.parent, d.parent != ""
}

// Installable reports whether the package can be installed directly.
func (d Descriptor) Installable() bool {
	return d.parent == "" && d.install != nil
}

// Launchable reports whether the package is a program that can be started.
func (d Descriptor) Launchable() bool {
	return d.launch != nil
}
