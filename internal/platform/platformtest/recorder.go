// Package platformtest provides a Runner that records what would have been spawned.
package platformtest

import (
	"context"
	"sync"

	"worbots-setup/internal/platform"
)

// Call is one recorded Runner invocation.
type Call struct {
	Kind    string // run, start, output, elevated, open
	Command platform.Command
	Wait    bool
}

// Recorder is a platform.Runner that spawns nothing.
type Recorder struct {
	mu    sync.Mutex
	Calls []Call

	// Err is returned from every call when set.
	Err error
	// Out is returned from Output.
	Out string
}

var _ platform.Runner = (*Recorder)(nil)

func (r *Recorder) record(c Call) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, c)
	return r.Err
}

func (r *Recorder) Run(_ context.Context, c platform.Command) error {
	return r.record(Call{Kind: "run", Command: c, Wait: true})
}

func (r *Recorder) Start(c platform.Command) error {
	return r.record(Call{Kind: "start", Command: c})
}

func (r *Recorder) Output(_ context.Context, c platform.Command) (string, error) {
	if err := r.record(Call{Kind: "output", Command: c, Wait: true}); err != nil {
		return "", err
	}
	return r.Out, nil
}

func (r *Recorder) Elevated(_ context.Context, path string, args []string, wait bool) error {
	return r.record(Call{Kind: "elevated", Command: platform.Command{Path: path, Args: args}, Wait: wait})
}

func (r *Recorder) OpenURL(_ context.Context, url string) error {
	return r.record(Call{Kind: "open", Command: platform.Command{Args: []string{url}}, Wait: true})
}

// Snapshot returns a copy of the recorded calls.
func (r *Recorder) Snapshot() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.Calls...)
}
