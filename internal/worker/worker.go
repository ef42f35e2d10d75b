// Package worker runs webhook side effects detached from the request that
// delivered them.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timelog-bot/internal/config"
)

// Task is a unit of detached work.
type Task = func(ctx context.Context)

var (
	ErrQueueFull = errors.New("worker queue full")
	ErrStopped   = errors.New("worker stopped")
)

// Runner accepts tasks.
type Runner interface {
	Submit(ctx context.Context, task func(ctx context.Context)) error
	Stop(ctx context.Context) error
}

// New returns the runner selected by cfg.Mode.
func New(cfg config.WorkerConfig, logger *slog.Logger) Runner {
	if cfg.Mode == config.WorkerModeInline {
		return Inline{}
	}
	return NewPool(logger, cfg.Concurrency, cfg.QueueSize)
}

// ---------------------------------------------------------------------------
// Inline
// ---------------------------------------------------------------------------

// Inline runs every task on the submitting goroutine.
type Inline struct{}

// Submit runs task before returning.
func (Inline) Submit(ctx context.Context, task func(ctx context.Context)) error {
	task(ctx)
	return nil
}

// Stop is a no-op.
func (Inline) Stop(context.Context) error { return nil }

// ---------------------------------------------------------------------------
// Pool
// ---------------------------------------------------------------------------

type job struct {
	ctx  context.Context
	task Task
}

// Pool runs tasks on a fixed number of goroutines fed by a bounded queue.
type Pool struct {
	jobs chan job
	g    errgroup.Group
	log  *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

// NewPool starts concurrency workers with room for queueSize waiting tasks.
func NewPool(logger *slog.Logger, concurrency, queueSize int) *Pool {
	if concurrency < 1 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		jobs: make(chan job, queueSize),
		log:  logger.With("component", "worker"),
	}
	for range concurrency {
		p.g.Go(p.loop)
	}

	p.log.Info("worker pool started",
		slog.Int("concurrency", concurrency),
		slog.Int("queue_size", queueSize),
	)
	return p
}

func (p *Pool) loop() error {
	for j := range p.jobs {
		p.run(j)
	}
	return nil
}

func (p *Pool) run(j job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.ErrorContext(j.ctx, "task panicked", slog.Any("panic", r))
		}
	}()
	j.task(j.ctx)
}

// Submit enqueues task without blocking. It fails with ErrQueueFull when the
// queue is at capacity and with ErrStopped after Stop.
func (p *Pool) Submit(ctx context.Context, task func(ctx context.Context)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrStopped
	}

	select {
	case p.jobs <- job{ctx: ctx, task: task}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new tasks and waits for queued ones to finish or for ctx to
// expire.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = p.g.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker pool stop: %w", ctx.Err())
	}
}
