// Package enrich holds metadata lookup clients used by the backfiller.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"life_logger/internal/credentials"
	"life_logger/internal/domain"
	"life_logger/internal/source/fetch"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w342"

// Credentials supplies the TMDB API key (stored alongside the Trakt blob).
type Credentials interface {
	Trakt() (*credentials.TraktCredential, error)
}

type TMDBConfig struct {
	BaseURL string
	Fetch   fetch.Config
}

// TMDBClient looks up poster art by title.
type TMDBClient struct {
	client  *fetch.Client
	baseURL string
	creds   Credentials
}

func NewTMDBClient(cfg TMDBConfig, creds Credentials, logger *slog.Logger) *TMDBClient {
	return &TMDBClient{
		client:  fetch.New(cfg.Fetch, logger.With("component", "tmdb")),
		baseURL: cfg.BaseURL,
		creds:   creds,
	}
}

type searchResponse struct {
	Results []struct {
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

// SearchPoster returns the poster URL of the first search hit for title, or
// "" when nothing matches or the hit carries no poster.
func (c *TMDBClient) SearchPoster(ctx context.Context, title, mediaType string) (string, error) {
	cred, err := c.creds.Trakt()
	if err != nil {
		return "", err
	}
	if cred.TMDBAPIKey == "" {
		return "", fmt.Errorf("%w: no tmdb_api_key", domain.ErrNoCredential)
	}

	searchType := "movie"
	if mediaType == "TV" {
		searchType = "tv"
	}

	params := url.Values{}
	params.Set("api_key", cred.TMDBAPIKey)
	params.Set("query", title)
	endpoint := fmt.Sprintf("%s/3/search/%s?%s", c.baseURL, searchType, params.Encode())

	var resp searchResponse
	if err := c.client.GetJSON(ctx, endpoint, nil, &resp); err != nil {
		return "", fmt.Errorf("search %s: %w", searchType, err)
	}

	if len(resp.Results) == 0 || resp.Results[0].PosterPath == "" {
		return "", nil
	}

	return posterBaseURL + resp.Results[0].PosterPath, nil
}
