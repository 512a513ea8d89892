// Package worker runs package actions off the GUI goroutine.
//
// The GUI submits a Job and keeps going; the outcome comes back as a Result
// on the pool's channel, which the GUI drains and applies on its own goroutine.
// Jobs are never cancelled once they start: an installer the user has begun
// clicking through must be allowed to finish.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"worbots-setup/internal/log"
)

// Job is one unit of background work.
type Job struct {
	ID    string
	Label string
	Run   func(ctx context.Context) error
}

// Result reports a finished Job.
type Result struct {
	JobID    string
	Label    string
	Err      error
	Duration time.Duration
}

// ErrClosed is returned by Submit after Close.
var ErrClosed = fmt.Errorf("worker pool is closed")

// Pool runs submitted jobs on a fixed number of goroutines in submission order.
type Pool struct {
	jobs    chan Job
	results chan Result

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// queueSize bounds how many jobs may wait. Submit never blocks the caller;
// a person clicking buttons cannot realistically queue more than this.
const queueSize = 64

// New starts a pool with n workers. n below 1 is treated as 1.
func New(ctx context.Context, n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs:    make(chan Job, queueSize),
		results: make(chan Result, queueSize),
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.work(ctx, i)
	}
	log.G(ctx).WithField("workers", n).Debug("worker pool started")
	return p
}

// Results delivers one Result per submitted job. It is closed after Close
// once every queued job has finished.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Submit queues fn under label and returns the job id.
func (p *Pool) Submit(label string, fn func(ctx context.Context) error) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return "", ErrClosed
	}

	job := Job{ID: newJobID(), Label: label, Run: fn}
	select {
	case p.jobs <- job:
		return job.ID, nil
	default:
		return "", fmt.Errorf("worker queue is full, %d jobs waiting", queueSize)
	}
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.results)
}

func (p *Pool) work(ctx context.Context, n int) {
	defer p.wg.Done()
	for job := range p.jobs {
		entry := log.G(ctx).WithFields(logrus.Fields{"worker": n, "job": job.ID, "label": job.Label})
		entry.Info("job started")

		started := time.Now()
		err := run(log.WithLogger(ctx, entry), job)
		res := Result{JobID: job.ID, Label: job.Label, Err: err, Duration: time.Since(started)}

		if err != nil {
			entry.WithError(err).WithField("duration", res.Duration).Error("job failed")
		} else {
			entry.WithField("duration", res.Duration).Info("job finished")
		}
		p.results <- res
	}
}

// run calls the job, turning a panic into an error so one broken routine
// cannot take the GUI down with it.
func run(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Label, r)
		}
	}()
	return job.Run(ctx)
}

// newJobID uses UUID v7 so ids sort by submission time in the log file.
func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
