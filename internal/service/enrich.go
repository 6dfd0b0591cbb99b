package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"life_logger/internal/domain"
)

// Backfiller sweeps stored records that lack a thumbnail and fills them in
// from upstream metadata. It runs after and independently of the sync passes;
// any per-candidate failure is logged and skipped, so remaining nulls are
// naturally retried on the next sweep.
type Backfiller struct {
	store      TimelineStore
	games      GameInfoClient
	posters    PosterClient
	batchLimit int
	logger     *slog.Logger
}

func NewBackfiller(
	store TimelineStore,
	games GameInfoClient,
	posters PosterClient,
	batchLimit int,
	logger *slog.Logger,
) *Backfiller {
	return &Backfiller{
		store:      store,
		games:      games,
		posters:    posters,
		batchLimit: batchLimit,
		logger:     logger.With("component", "backfiller"),
	}
}

func (b *Backfiller) Run(ctx context.Context) (*domain.EnrichStats, error) {
	startTime := time.Now()
	stats := &domain.EnrichStats{}

	if b.games != nil {
		b.backfillGameThumbnails(ctx, stats)
	}
	if b.posters != nil {
		b.backfillPosters(ctx, stats)
	}

	stats.Duration = time.Since(startTime)

	b.logger.Info("backfill completed",
		"candidates", stats.Candidates,
		"updated", stats.Updated,
		"misses", stats.Misses,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (b *Backfiller) backfillGameThumbnails(ctx context.Context, stats *domain.EnrichStats) {
	candidates, err := b.store.EnrichmentCandidates(ctx, domain.SourceRetro, b.batchLimit)
	if err != nil {
		b.logger.Error("scan game candidates", "error", err)
		stats.Errors++
		return
	}
	stats.Candidates += len(candidates)

	for _, c := range candidates {
		if c.GameID == nil {
			continue
		}

		icon, err := b.games.GameIcon(ctx, *c.GameID)
		if err != nil {
			b.logger.Warn("game icon lookup failed", "game_id", *c.GameID, "title", c.Title, "error", err)
			stats.Errors++
			continue
		}
		if icon == "" {
			b.logger.Warn("no image for game", "game_id", *c.GameID, "title", c.Title)
			stats.Misses++
			continue
		}

		// One game id covers every stored session of that game.
		if err := b.store.SetThumbnailByGame(ctx, *c.GameID, icon); err != nil {
			b.logger.Warn("update thumbnail failed", "game_id", *c.GameID, "error", err)
			stats.Errors++
			continue
		}

		b.logger.Debug("thumbnail added", "title", c.Title)
		stats.Updated++
	}
}

func (b *Backfiller) backfillPosters(ctx context.Context, stats *domain.EnrichStats) {
	candidates, err := b.store.EnrichmentCandidates(ctx, domain.SourceTrakt, b.batchLimit)
	if err != nil {
		b.logger.Error("scan poster candidates", "error", err)
		stats.Errors++
		return
	}
	stats.Candidates += len(candidates)

	for _, c := range candidates {
		if c.MediaType == nil {
			continue
		}

		poster, err := b.posters.SearchPoster(ctx, lookupTitle(c), *c.MediaType)
		if err != nil {
			b.logger.Warn("poster lookup failed", "title", c.Title, "error", err)
			stats.Errors++
			continue
		}
		if poster == "" {
			b.logger.Warn("no poster found", "title", c.Title)
			stats.Misses++
			continue
		}

		if err := b.store.SetThumbnail(ctx, c.ID, poster); err != nil {
			b.logger.Warn("update poster failed", "id", c.ID, "error", err)
			stats.Errors++
			continue
		}

		b.logger.Debug("poster added", "title", c.Title)
		stats.Updated++
	}
}

// lookupTitle strips the season/episode suffix off composite episode titles
// ("Show - S02E05" searches as "Show"); movies search by their full title.
func lookupTitle(c domain.EnrichmentCandidate) string {
	if c.MediaType != nil && *c.MediaType == "TV" {
		if idx := strings.LastIndex(c.Title, " - S"); idx > 0 {
			return c.Title[:idx]
		}
	}
	return c.Title
}
