// Package scheduler drives the periodic full refresh: one sequential sweep
// over every region, then a fixed sleep, forever. There is no checkpointing;
// an interrupted cycle re-runs from the beginning on restart.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Roups939/HotSecjobBot/internal/pipeline"
	"github.com/Roups939/HotSecjobBot/internal/store"
	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

// Scheduler owns the refresh loop.
type Scheduler struct {
	pipeline *pipeline.Pipeline
	store    *store.Store
	interval time.Duration
}

// New builds a Scheduler that sleeps interval between sweeps.
func New(p *pipeline.Pipeline, s *store.Store, interval time.Duration) *Scheduler {
	return &Scheduler{pipeline: p, store: s, interval: interval}
}

// Run sweeps immediately, then every interval after the previous sweep
// finishes. Blocks until ctx is cancelled. The sleep starts after the sweep
// completes, so cycles never overlap no matter how long a sweep takes.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.Sweep(ctx)

		slog.Info("scheduler: sleeping until next refresh", slog.Duration("interval", s.interval))
		select {
		case <-time.After(s.interval):
		case <-ctx.Done():
			slog.Info("scheduler: stopped")
			return
		}
	}
}

// Sweep collects and snapshots every region once, in taxonomy order. A
// region whose collection was cut short by cancellation is not snapshotted;
// earlier regions of the same cycle keep their fresh tables.
func (s *Scheduler) Sweep(ctx context.Context) {
	started := time.Now()

	for _, name := range taxonomy.RegionNames {
		regionID, _ := taxonomy.RegionID(name)

		records, err := s.pipeline.CollectRegion(ctx, regionID)
		if err != nil {
			slog.Info("scheduler: sweep interrupted",
				slog.String("region", name),
				slog.Any("error", err),
			)
			return
		}

		if err := s.store.WriteSnapshot(regionID, records); err != nil {
			slog.Error("scheduler: snapshot write failed",
				slog.String("region", name),
				slog.Any("error", err),
			)
			continue
		}
		slog.Info("scheduler: region refreshed",
			slog.String("region", name),
			slog.Int("records", len(records)),
		)
	}

	slog.Info("scheduler: sweep complete", slog.Duration("took", time.Since(started)))
}
