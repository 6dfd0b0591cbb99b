// Package retro syncs game sessions from the RetroAchievements API.
package retro

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"life_logger/internal/credentials"
	"life_logger/internal/domain"
	"life_logger/internal/source/fetch"
)

const lastPlayedLayout = "2006-01-02 15:04:05"

// Credentials supplies the RetroAchievements key material.
type Credentials interface {
	Retro() (*credentials.APIKeyCredential, error)
}

type Config struct {
	BaseURL string
	Fetch   fetch.Config
}

// Source fetches the recently-played snapshot window. The API has no time
// cursor, so the whole window is returned on every pass and the writer's
// dedup key rejects sessions that are already stored.
type Source struct {
	client  *fetch.Client
	baseURL string
	creds   Credentials
	logger  *slog.Logger
}

func New(cfg Config, creds Credentials, logger *slog.Logger) *Source {
	logger = logger.With("source", domain.SourceRetro)
	return &Source{
		client:  fetch.New(cfg.Fetch, logger),
		baseURL: cfg.BaseURL,
		creds:   creds,
		logger:  logger,
	}
}

func (s *Source) ID() domain.Source {
	return domain.SourceRetro
}

func (s *Source) Name() string {
	return "RetroAchievements"
}

// FetchRecent returns the normalized recently-played window. The cutoff is
// not sent upstream (the endpoint cannot filter by time); sessions at or
// before it are rejected at write time instead.
func (s *Source) FetchRecent(ctx context.Context, _ *time.Time) ([]domain.TimelineRecord, int, error) {
	cred, err := s.creds.Retro()
	if err != nil {
		return nil, 0, err
	}

	endpoint := fmt.Sprintf("%s/API/API_GetUserRecentlyPlayedGames.php?z=%s&y=%s&u=%s",
		s.baseURL,
		url.QueryEscape(cred.Username),
		url.QueryEscape(cred.APIKey),
		url.QueryEscape(cred.Username),
	)

	var games []RecentGame
	if err := s.client.GetJSON(ctx, endpoint, nil, &games); err != nil {
		return nil, 0, fmt.Errorf("fetch recently played: %w", err)
	}

	return s.transform(games)
}

func (s *Source) transform(games []RecentGame) ([]domain.TimelineRecord, int, error) {
	records := make([]domain.TimelineRecord, 0, len(games))
	skipped := 0

	for _, g := range games {
		playedAt, err := time.ParseInLocation(lastPlayedLayout, g.LastPlayed, time.UTC)
		if err != nil {
			s.logger.Warn("skipping session with unparsable date",
				"game_id", g.GameID,
				"last_played", g.LastPlayed,
			)
			skipped++
			continue
		}

		gameID := g.GameID
		console := g.ConsoleName

		records = append(records, domain.TimelineRecord{
			Source:      domain.SourceRetro,
			Title:       g.Title,
			Timestamp:   playedAt,
			ConsoleName: &console,
			GameID:      &gameID,
		})
	}

	return records, skipped, nil
}

// GameIcon looks up the box icon for a game, used by the enrichment
// backfiller. Returns "" when the game has no image upstream.
func (s *Source) GameIcon(ctx context.Context, gameID int64) (string, error) {
	cred, err := s.creds.Retro()
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/API/API_GetGame.php?z=%s&y=%s&i=%d",
		s.baseURL,
		url.QueryEscape(cred.Username),
		url.QueryEscape(cred.APIKey),
		gameID,
	)

	var info GameInfo
	if err := s.client.GetJSON(ctx, endpoint, nil, &info); err != nil {
		return "", fmt.Errorf("fetch game info %d: %w", gameID, err)
	}

	if info.ImageIcon == "" {
		return "", nil
	}

	return s.baseURL + info.ImageIcon, nil
}
