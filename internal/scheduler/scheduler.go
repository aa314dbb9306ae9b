// Package scheduler wires up the cron job that periodically triggers a full
// aggregation run.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"chefwire/aggregator-service/internal/worker"
)

// Scheduler wraps robfig/cron and manages the aggregation loop.
type Scheduler struct {
	cron   *cron.Cron
	worker *worker.Worker
	spec   string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(w *worker.Worker, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		worker: w,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also kicks off one run
// immediately so the feed is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	go s.runOnce(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runOnce(ctx context.Context) {
	log.Println("[scheduler] Aggregation cycle started")
	if _, err := s.worker.Run(ctx); err != nil {
		log.Printf("[scheduler] Run aborted: %v", err)
		return
	}
	log.Println("[scheduler] Aggregation cycle complete")
}
