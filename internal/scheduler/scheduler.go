// Package scheduler enqueues jobs on a worker pool at fixed intervals.
package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/TradingPost_Go/internal/worker"
)

// Enqueuer accepts jobs for asynchronous execution
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool  Enqueuer
	clock clockwork.Clock
	quit  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// New creates a new scheduler. A nil clock uses the real clock.
func New(pool Enqueuer, clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		pool:  pool,
		clock: clock,
		quit:  make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval
// from now. A tick that finds the pool queue full is skipped.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, false)
}

// ScheduleNow is Schedule with an extra run enqueued immediately
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, true)
}

func (s *Scheduler) schedule(interval time.Duration, job worker.Job, now bool) {
	ticker := s.clock.NewTicker(interval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		if now {
			s.pool.TryEnqueue(job)
		}
		for {
			select {
			case <-ticker.Chan():
				s.pool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. Jobs already enqueued are left to the pool.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
