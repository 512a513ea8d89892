package catalog

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"worbots-setup/internal/logger"
	"worbots-setup/internal/state"
)

// Registry is the immutable package table.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// NewRegistry validates descriptors and builds a Registry that keeps them in
// the given order. Ids must be unique, and a parent must be a registered
// package that has no parent itself.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("package %q has an empty id", d.DisplayName)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("package id %q is registered twice", d.ID)
		}
		r.byID[d.ID] = d.clone()
		r.order = append(r.order, d.ID)
	}

	for _, id := range r.order {
		parent, ok := r.byID[id].Parent()
		if !ok {
			continue
		}
		p, known := r.byID[parent]
		if !known {
			return nil, fmt.Errorf("package %s has unknown parent %q", id, parent)
		}
		if _, nested := p.Parent(); nested {
			return nil, fmt.Errorf("package %s has parent %s which is itself a child package", id, parent)
		}
	}
	return r, nil
}

// IDs returns every id in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out
}

// clone copies the icon so callers cannot change the registry's bytes.
func (d Descriptor) clone() Descriptor {
	d.Icon = bytes.Clone(d.Icon)
	return d
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, &UnknownPackageError{ID: id, Valid: r.IDs()}
	}
	return d.clone(), nil
}

// Resolve looks up every id, failing on the first unknown one.
func (r *Registry) Resolve(ids []string) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(ids))
	for _, id := range ids {
		d, err := r.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ParentOf returns the package that installs id, if it has one.
func (r *Registry) ParentOf(id string) (Descriptor, bool, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return Descriptor{}, false, err
	}
	parent, ok := d.Parent()
	if !ok {
		return Descriptor{}, false, nil
	}
	return r.byID[parent].clone(), true, nil
}

// Children returns the packages installed by id, in registration order.
func (r *Registry) Children(id string) []Descriptor {
	var out []Descriptor
	for _, cid := range r.order {
		if parent, ok := r.byID[cid].Parent(); ok && parent == id {
			out = append(out, r.byID[cid].clone())
		}
	}
	return out
}

// CanInstall reports whether id can be installed directly. Unknown ids cannot.
func (r *Registry) CanInstall(id string) bool {
	d, ok := r.byID[id]
	return ok && d.Installable()
}

// CanLaunch reports whether id is a launchable program. Unknown ids are not.
func (r *Registry) CanLaunch(id string) bool {
	d, ok := r.byID[id]
	return ok && d.Launchable()
}

// Install runs the install routine of id. A package that cannot be installed
// yields *NotInstallableError without touching the network, disk or env.
// A successful install is recorded in env.State when one is set.
func (r *Registry) Install(ctx context.Context, id string, env *Env) error {
	d, err := r.Lookup(id)
	if err != nil {
		return err
	}
	if !d.Installable() {
		parent, _ := d.Parent()
		return &NotInstallableError{ID: id, Parent: parent}
	}

	env.Out.Progress(fmt.Sprintf("Installing package %s", d.DisplayName))
	version, err := d.install(ctx, env)
	if err != nil {
		return errors.Wrapf(err, "failed to install %s", id)
	}

	if env.State != nil {
		rec := state.PackageState{
			Version:     version,
			InstalledAt: time.Now().UTC(),
			InstallDir:  filepath.Join(env.Paths.Data, id),
		}
		if err := env.State.Record(id, rec); err != nil {
			logger.Warn("[WARN] Installed %s but failed to record it: %v\n", id, err)
		}
	}

	env.Out.Success(fmt.Sprintf("Package %s installed", d.DisplayName))
	return nil
}

// Launch runs the launch routine of id. A package that is not launchable
// yields *NotLaunchableError without spawning anything.
func (r *Registry) Launch(ctx context.Context, id string, env *Env) error {
	d, err := r.Lookup(id)
	if err != nil {
		return err
	}
	if !d.Launchable() {
		return &NotLaunchableError{ID: id}
	}

	env.Out.Progress(fmt.Sprintf("Launching package %s", d.DisplayName))
	if err := d.launch(ctx, env); err != nil {
		return errors.Wrapf(err, "failed to launch %s", id)
	}
	env.Out.Success(fmt.Sprintf("Package %s launched", d.DisplayName))
	return nil
}
