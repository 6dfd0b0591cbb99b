// Package strava syncs workouts from the Strava API.
package strava

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"life_logger/internal/credentials"
	"life_logger/internal/domain"
	"life_logger/internal/source/fetch"
)

// TokenSource supplies a valid Strava credential, refreshing an expired one
// before the adapter makes any fetch.
type TokenSource interface {
	Strava(ctx context.Context) (*credentials.OAuthCredential, error)
}

type Config struct {
	BaseURL  string
	PageSize int
	Fetch    fetch.Config
}

// Source fetches the recent-activities snapshot window. No time cursor
// upstream; already-stored activities are rejected by the writer on
// (source, external_id).
type Source struct {
	client   *fetch.Client
	baseURL  string
	pageSize int
	tokens   TokenSource
	logger   *slog.Logger
}

func New(cfg Config, tokens TokenSource, logger *slog.Logger) *Source {
	logger = logger.With("source", domain.SourceStrava)
	return &Source{
		client:   fetch.New(cfg.Fetch, logger),
		baseURL:  cfg.BaseURL,
		pageSize: cfg.PageSize,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *Source) ID() domain.Source {
	return domain.SourceStrava
}

func (s *Source) Name() string {
	return "Strava"
}

func (s *Source) FetchRecent(ctx context.Context, _ *time.Time) ([]domain.TimelineRecord, int, error) {
	cred, err := s.tokens.Strava(ctx)
	if err != nil {
		return nil, 0, err
	}

	endpoint := fmt.Sprintf("%s/api/v3/athlete/activities?per_page=%d", s.baseURL, s.pageSize)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+cred.AccessToken)

	var activities []Activity
	if err := s.client.GetJSON(ctx, endpoint, header, &activities); err != nil {
		return nil, 0, fmt.Errorf("fetch activities: %w", err)
	}

	return s.transform(activities)
}

func (s *Source) transform(activities []Activity) ([]domain.TimelineRecord, int, error) {
	records := make([]domain.TimelineRecord, 0, len(activities))
	skipped := 0

	for _, a := range activities {
		startedAt, err := time.Parse(time.RFC3339, a.StartDate)
		if err != nil {
			s.logger.Warn("skipping activity with unparsable date",
				"activity_id", a.ID,
				"start_date", a.StartDate,
			)
			skipped++
			continue
		}

		externalID := a.ID
		activityType := a.Type
		durationMin := round2(a.ElapsedTime / 60)
		distanceKm := round2(a.Distance / 1000)

		records = append(records, domain.TimelineRecord{
			Source:       domain.SourceStrava,
			ExternalID:   &externalID,
			Title:        a.Name,
			Timestamp:    startedAt.UTC(),
			ActivityType: &activityType,
			DurationMin:  &durationMin,
			DistanceKm:   &distanceKm,
			Calories:     a.Calories,
		})
	}

	return records, skipped, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
