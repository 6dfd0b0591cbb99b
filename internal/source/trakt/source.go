// Package trakt syncs watch history from the Trakt API.
package trakt

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"life_logger/internal/credentials"
	"life_logger/internal/domain"
	"life_logger/internal/source/fetch"
)

const (
	mediaTypeTV    = "TV"
	mediaTypeMovie = "Movie"
)

// Credentials supplies the Trakt token material.
type Credentials interface {
	Trakt() (*credentials.TraktCredential, error)
}

type Config struct {
	BaseURL  string
	PageSize int
	Fetch    fetch.Config
}

// Source fetches watch history newer than the cutoff. /sync/history accepts a
// start_at bound, so unlike the snapshot sources this one only re-fetches the
// boundary item.
type Source struct {
	client   *fetch.Client
	baseURL  string
	pageSize int
	creds    Credentials
	logger   *slog.Logger
}

func New(cfg Config, creds Credentials, logger *slog.Logger) *Source {
	logger = logger.With("source", domain.SourceTrakt)
	return &Source{
		client:   fetch.New(cfg.Fetch, logger),
		baseURL:  cfg.BaseURL,
		pageSize: cfg.PageSize,
		creds:    creds,
		logger:   logger,
	}
}

func (s *Source) ID() domain.Source {
	return domain.SourceTrakt
}

func (s *Source) Name() string {
	return "Trakt"
}

func (s *Source) FetchRecent(ctx context.Context, cutoff *time.Time) ([]domain.TimelineRecord, int, error) {
	cred, err := s.creds.Trakt()
	if err != nil {
		return nil, 0, err
	}

	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", s.pageSize))
	if cutoff != nil {
		params.Set("start_at", cutoff.UTC().Format(time.RFC3339))
	}
	endpoint := fmt.Sprintf("%s/sync/history?%s", s.baseURL, params.Encode())

	header := http.Header{}
	header.Set("Authorization", "Bearer "+cred.AccessToken)
	header.Set("Content-Type", "application/json")
	header.Set("trakt-api-version", "2")
	header.Set("trakt-api-key", cred.ClientID)

	var history []HistoryItem
	if err := s.client.GetJSON(ctx, endpoint, header, &history); err != nil {
		return nil, 0, fmt.Errorf("fetch history: %w", err)
	}

	return s.transform(history)
}

func (s *Source) transform(history []HistoryItem) ([]domain.TimelineRecord, int, error) {
	records := make([]domain.TimelineRecord, 0, len(history))
	skipped := 0

	for _, item := range history {
		rec, err := normalize(item)
		if err != nil {
			s.logger.Warn("skipping history item", "history_id", item.ID, "error", err)
			skipped++
			continue
		}
		records = append(records, *rec)
	}

	return records, skipped, nil
}

func normalize(item HistoryItem) (*domain.TimelineRecord, error) {
	watchedAt, err := time.Parse(time.RFC3339, item.WatchedAt)
	if err != nil {
		return nil, &domain.NormalizationError{
			Source: domain.SourceTrakt,
			Field:  "watched_at",
			Value:  item.WatchedAt,
			Err:    err,
		}
	}

	externalID := item.ID
	rec := domain.TimelineRecord{
		Source:     domain.SourceTrakt,
		ExternalID: &externalID,
		Timestamp:  watchedAt.UTC(),
	}

	switch item.Type {
	case "episode":
		if item.Show == nil || item.Episode == nil {
			return nil, &domain.NormalizationError{
				Source: domain.SourceTrakt,
				Field:  "type",
				Value:  item.Type,
				Err:    fmt.Errorf("episode item without show or episode body"),
			}
		}
		rec.Title = fmt.Sprintf("%s - S%02dE%02d", item.Show.Title, item.Episode.Season, item.Episode.Number)
		mediaType := mediaTypeTV
		season := item.Episode.Season
		episode := item.Episode.Number
		rec.MediaType = &mediaType
		rec.Season = &season
		rec.Episode = &episode
	case "movie":
		if item.Movie == nil {
			return nil, &domain.NormalizationError{
				Source: domain.SourceTrakt,
				Field:  "type",
				Value:  item.Type,
				Err:    fmt.Errorf("movie item without movie body"),
			}
		}
		rec.Title = item.Movie.Title
		mediaType := mediaTypeMovie
		rec.MediaType = &mediaType
	default:
		return nil, &domain.NormalizationError{
			Source: domain.SourceTrakt,
			Field:  "type",
			Value:  item.Type,
			Err:    fmt.Errorf("unsupported history type"),
		}
	}

	return &rec, nil
}
