// Package cron drives the overnight housekeeping jobs on fixed tickers.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs until stopped. All jobs are registered
// before Start; adding after Start is not supported.
type Scheduler struct {
	jobs   []job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddJob registers a named job to run on every interval.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
}

// Start launches one goroutine per job. Each job fires once right away, then
// on its ticker, until Stop. Job errors are logged and never stop the loop.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()

			run := func() {
				start := time.Now()
				if err := j.fn(ctx); err != nil {
					slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
				}
			}

			run()

			ticker := time.NewTicker(j.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					run()
				}
			}
		}(j)
	}

	slog.Info("Cron scheduler started", "jobs", len(s.jobs))
}

// Stop cancels the job context and waits for in-flight runs to return.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// RunOnce executes every registered job a single time against ctx.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, j := range s.jobs {
		if err := j.fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}
