package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickPeriod is used when a scheduler is built with a non-positive
// period.
const DefaultTickPeriod = 60 * time.Second

type scheduler struct {
	tick   func(ctx context.Context)
	period time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewScheduler creates a scheduler that calls tick once on start and then
// every period. The scheduler is idle until Start is called.
func NewScheduler(tick func(ctx context.Context), period time.Duration) Scheduler {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &scheduler{tick: tick, period: period}
}

// Start implements Scheduler. A second Start while the worker is alive is a
// no-op. The worker exits when ctx is cancelled or Stop is called.
func (j *scheduler) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running.Load() {
		return
	}

	// a worker that exited on its own still has to be joined
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.running.Store(true)
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		defer j.running.Store(false)

		t := time.NewTicker(j.period)
		defer t.Stop()

		j.tick(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements Scheduler. It cancels the worker's context and blocks
// until the worker has fully exited. Safe to call when the scheduler is not
// running (no-op in that case).
func (j *scheduler) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *scheduler) Running() bool {
	return j.running.Load()
}
