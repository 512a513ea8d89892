package catalog

import (
	"context"

	"worbots-setup/internal/logger"
)

// Outcome is the result of one package in a batch.
type Outcome struct {
	ID  string
	Err error
}

// Summary collects the outcomes of a batch in the order they ran.
type Summary struct {
	Outcomes []Outcome
}

// Succeeded returns the ids that finished without error.
func (s Summary) Succeeded() []string {
	var ids []string
	for _, o := range s.Outcomes {
		if o.Err == nil {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Failed returns the outcomes that carry an error.
func (s Summary) Failed() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// FirstError returns the error of the earliest failed package, or nil.
func (s Summary) FirstError() error {
	for _, o := range s.Outcomes {
		if o.Err != nil {
			return o.Err
		}
	}
	return nil
}

// InstallMany installs ids one after another. A failure does not stop the
// batch: the packages are unrelated installers, so the rest still run and
// every failure is reported in the Summary.
func (r *Registry) InstallMany(ctx context.Context, env *Env, ids []string) Summary {
	return r.runMany(ctx, env, ids, "install", r.Install)
}

// LaunchMany launches ids one after another with the same policy as InstallMany.
func (r *Registry) LaunchMany(ctx context.Context, env *Env, ids []string) Summary {
	return r.runMany(ctx, env, ids, "launch", r.Launch)
}

func (r *Registry) runMany(ctx context.Context, env *Env, ids []string, verb string,
	run func(context.Context, string, *Env) error) Summary {
	var s Summary
	for _, id := range ids {
		logger.Debug("[DEBUG] Batch %s: %s\n", verb, id)
		err := run(ctx, id, env)
		if err != nil {
			logger.Debug("[DEBUG] Batch %s of %s failed: %v\n", verb, id, err)
		}
		s.Outcomes = append(s.Outcomes, Outcome{ID: id, Err: err})
	}
	return s
}
