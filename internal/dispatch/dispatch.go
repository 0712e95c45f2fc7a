// Package dispatch runs store queries off the caller's goroutine and
// delivers results through completion callbacks, so a presentation layer
// has one place to check for failure per request.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
)

// Job performs a unit of read work against the store.
type Job func(ctx context.Context) (any, error)

// Result is what a callback receives. Exactly one of Value and Err is
// meaningful.
type Result struct {
	Value any
	Err   error
}

// Callback receives the outcome of a submitted job. It is invoked from a
// pool goroutine; callers that need the result on their own goroutine
// should hand it off themselves.
type Callback func(Result)

type submission struct {
	id   uuid.UUID
	ctx  context.Context
	job  Job
	done Callback
}

// options holds the internal runtime configuration
type options struct {
	workerCount int
	queueSize   int
	logger      *slog.Logger
}

// Option is a function that configures the pool options
type Option func(*options)

// WithWorkerCount sets the number of workers
func WithWorkerCount(count int) Option {
	return func(o *options) {
		o.workerCount = count
	}
}

// WithQueueSize sets the submission queue capacity
func WithQueueSize(size int) Option {
	return func(o *options) {
		o.queueSize = size
	}
}

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Pool is a fixed-size worker pool. Once a job is picked up it runs to
// completion; there is no cancellation of in-flight work.
type Pool struct {
	jobs    chan submission
	workers sync.WaitGroup
	log     *slog.Logger

	stopOnce sync.Once
}

// New builds and starts a pool. The zero-option pool runs 4 workers with a
// queue of 16 pending submissions.
func New(opts ...Option) *Pool {
	o := options{
		workerCount: 4,
		queueSize:   16,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workerCount < 1 {
		o.workerCount = 1
	}

	p := &Pool{
		jobs: make(chan submission, o.queueSize),
		log:  o.logger,
	}
	for i := 0; i < o.workerCount; i++ {
		p.workers.Add(1)
		go p.work(i)
	}
	return p
}

// Submit queues a job. The callback always fires exactly once, with an
// error Result if the job failed or panicked. Submit blocks when the queue
// is full and returns an error only after Stop.
func (p *Pool) Submit(ctx context.Context, job Job, done Callback) (err error) {
	defer func() {
		if recover() != nil {
			err = fmt.Errorf("dispatch pool is stopped")
		}
	}()
	p.jobs <- submission{id: uuid.New(), ctx: ctx, job: job, done: done}
	return nil
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobs)
	})
	p.workers.Wait()
}

func (p *Pool) work(n int) {
	defer p.workers.Done()
	for sub := range p.jobs {
		p.run(n, sub)
	}
}

// run executes one submission. Panics must not escape the worker; they are
// converted to an error and delivered through the same callback as success.
func (p *Pool) run(n int, sub submission) {
	delivered := false
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("query worker panic",
				"worker", n,
				"request_id", sub.id.String(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			if !delivered {
				sub.done(Result{Err: fmt.Errorf("query failed: %v", r)})
			}
		}
	}()

	p.log.Debug("query dispatched", "worker", n, "request_id", sub.id.String())
	value, err := sub.job(sub.ctx)
	delivered = true
	if err != nil {
		sub.done(Result{Err: err})
		return
	}
	sub.done(Result{Value: value})
}
