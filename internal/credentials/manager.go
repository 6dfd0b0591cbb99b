package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"life_logger/internal/domain"
)

const (
	retroFile  = "retro"
	traktFile  = "trakt"
	stravaFile = "strava"
)

// HTTPClient allows injecting a test client into the refresh flow.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Manager hands out valid credentials per source. For OAuth sources an
// expired token is refreshed and persisted before the credential is returned,
// so a refresh happens at most once per pass and never mid-pass.
type Manager struct {
	store      *Store
	tokenURL   string
	httpClient HTTPClient
	now        func() time.Time
	logger     *slog.Logger
}

type Config struct {
	Dir      string
	TokenURL string
	Timeout  time.Duration
}

type Option func(*Manager)

func WithHTTPClient(c HTTPClient) Option {
	return func(m *Manager) { m.httpClient = c }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(cfg Config, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:      NewStore(cfg.Dir),
		tokenURL:   cfg.TokenURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
		logger:     logger.With("component", "credentials"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Retro returns the RetroAchievements key credential.
func (m *Manager) Retro() (*APIKeyCredential, error) {
	var cred APIKeyCredential
	if err := m.store.Load(retroFile, &cred); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", domain.ErrNoCredential, domain.SourceRetro, err)
	}
	if cred.APIKey == "" {
		return nil, fmt.Errorf("%w for %s: empty api_key", domain.ErrNoCredential, domain.SourceRetro)
	}
	return &cred, nil
}

// Trakt returns the Trakt credential.
func (m *Manager) Trakt() (*TraktCredential, error) {
	var cred TraktCredential
	if err := m.store.Load(traktFile, &cred); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", domain.ErrNoCredential, domain.SourceTrakt, err)
	}
	if cred.AccessToken == "" {
		return nil, fmt.Errorf("%w for %s: empty access_token", domain.ErrNoCredential, domain.SourceTrakt)
	}
	return &cred, nil
}

// Strava returns a valid Strava credential, performing the refresh exchange
// first when the stored token has expired. The rotated triple is persisted
// before the credential is handed out, so an aborted pass still leaves the
// new baseline on disk.
func (m *Manager) Strava(ctx context.Context) (*OAuthCredential, error) {
	var cred OAuthCredential
	if err := m.store.Load(stravaFile, &cred); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", domain.ErrNoCredential, domain.SourceStrava, err)
	}
	if cred.RefreshToken == "" {
		return nil, fmt.Errorf("%w for %s: empty refresh_token", domain.ErrNoCredential, domain.SourceStrava)
	}

	if m.now().Unix() < cred.ExpiresAt {
		return &cred, nil
	}

	m.logger.Info("access token expired, refreshing", "source", domain.SourceStrava)

	refreshed, err := m.refresh(ctx, &cred)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefresh, err)
	}

	cred.AccessToken = refreshed.AccessToken
	cred.RefreshToken = refreshed.RefreshToken
	cred.ExpiresAt = refreshed.ExpiresAt

	if err := m.store.Save(stravaFile, &cred); err != nil {
		return nil, fmt.Errorf("%w: persist rotated token: %v", domain.ErrTokenRefresh, err)
	}

	m.logger.Info("access token refreshed", "source", domain.SourceStrava, "expires_at", cred.ExpiresAt)

	return &cred, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

func (m *Manager) refresh(ctx context.Context, cred *OAuthCredential) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", cred.ClientID)
	form.Set("client_secret", cred.ClientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", cred.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint status %d: %s", resp.StatusCode, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned empty access_token")
	}

	return &token, nil
}
