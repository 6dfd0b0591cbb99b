package scheduler

import (
	"context"
	"log/slog"
	"time"

	"life_logger/internal/domain"
)

// Syncer runs one source's sync pass.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// Backfiller runs one enrichment sweep.
type Backfiller interface {
	Run(ctx context.Context) (*domain.EnrichStats, error)
}

// Scheduler drives the sync passes on a fixed interval: every enabled source
// sequentially, then one enrichment sweep. A failing pass is logged and the
// remaining sources still run; each pass has its own bounded timeout so a
// stalled upstream call fails the pass instead of hanging the cycle.
type Scheduler struct {
	syncers     []Syncer
	backfiller  Backfiller
	interval    time.Duration
	passTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(syncers []Syncer, backfiller Backfiller, interval, passTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncers:     syncers,
		backfiller:  backfiller,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "sources", len(s.syncers))

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	for _, syncer := range s.syncers {
		if ctx.Err() != nil {
			return
		}
		s.runSync(ctx, syncer)
	}

	if s.backfiller != nil && ctx.Err() == nil {
		s.runBackfill(ctx)
	}
}

func (s *Scheduler) runSync(ctx context.Context, syncer Syncer) {
	syncCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	if _, err := syncer.Sync(syncCtx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}

func (s *Scheduler) runBackfill(ctx context.Context) {
	enrichCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	if _, err := s.backfiller.Run(enrichCtx); err != nil {
		s.logger.Error("backfill failed", "error", err)
	}
}
