package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"life_logger/internal/domain"
)

// SyncService runs one source's incremental sync pass: read the frozen
// watermark, fetch the upstream window, commit unseen records one by one and
// fan newly inserted ones out to the publisher.
type SyncService struct {
	source    Source
	store     TimelineStore
	syncState SyncStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewSyncService(
	source Source,
	store TimelineStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		store:     store,
		syncState: syncState,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
	}
}

func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	stats := &domain.SyncStats{Source: s.source.ID()}

	s.logger.Info("starting sync", "source_name", s.source.Name())

	// The watermark is read once and frozen for the whole pass. Records
	// inserted by this pass never shift the cutoff under later records of
	// the same batch.
	cutoff, err := s.store.MaxTimestamp(ctx, s.source.ID())
	if err != nil {
		return stats, fmt.Errorf("read watermark: %w", err)
	}
	if cutoff == nil {
		s.logger.Info("no records stored yet, importing full upstream window")
	} else {
		s.logger.Debug("watermark", "cutoff", cutoff)
	}

	records, parseSkips, err := s.source.FetchRecent(ctx, cutoff)
	if err != nil {
		return stats, fmt.Errorf("fetch recent: %w", err)
	}

	stats.Fetched = len(records)
	stats.ParseSkips = parseSkips

	s.logger.Info("fetched records from source", "count", len(records), "parse_skips", parseSkips)

	for i := range records {
		rec := &records[i]

		var inserted bool
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			var err error
			inserted, err = s.store.Insert(txCtx, rec)
			return err
		})
		if err != nil {
			// Commits are incremental: what was written stays
			// written, the rest of the batch is not attempted.
			stats.Errors++
			return stats, fmt.Errorf("insert record %q: %w", rec.Title, err)
		}

		if !inserted {
			stats.Skipped++
			continue
		}
		stats.New++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, rec); err != nil {
				s.logger.Warn("publish failed", "title", rec.Title, "error", err)
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	if err := s.updateSyncState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update sync state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"skipped", stats.Skipped,
		"parse_skips", stats.ParseSkips,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) updateSyncState(ctx context.Context, stats *domain.SyncStats) error {
	state, err := s.syncState.Get(ctx, s.source.ID())
	if err != nil {
		return err
	}

	state.Source = s.source.ID()
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(stats.New)

	return s.syncState.Update(ctx, state)
}
