package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_logger/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeCred(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), data, 0o600))
}

func TestRetro_MissingCredential(t *testing.T) {
	m := NewManager(Config{Dir: t.TempDir()}, testLogger())

	_, err := m.Retro()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestRetro_LoadsKey(t *testing.T) {
	dir := t.TempDir()
	writeCred(t, dir, "retro", APIKeyCredential{Username: "player1", APIKey: "secret"})

	m := NewManager(Config{Dir: dir}, testLogger())

	cred, err := m.Retro()
	require.NoError(t, err)
	assert.Equal(t, "player1", cred.Username)
	assert.Equal(t, "secret", cred.APIKey)
}

func TestStrava_NotExpired_NoRefresh(t *testing.T) {
	dir := t.TempDir()
	writeCred(t, dir, "strava", OAuthCredential{
		ClientID:     "id",
		ClientSecret: "sec",
		AccessToken:  "live-token",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	})

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	m := NewManager(Config{Dir: dir, TokenURL: srv.URL}, testLogger())

	cred, err := m.Strava(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "live-token", cred.AccessToken)
	assert.Equal(t, 0, calls)
}

func TestStrava_Expired_RefreshesAndPersists(t *testing.T) {
	dir := t.TempDir()
	writeCred(t, dir, "strava", OAuthCredential{
		ClientID:     "id",
		ClientSecret: "sec",
		AccessToken:  "stale-token",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(-time.Hour).Unix(),
	})

	newExpiry := time.Now().Add(6 * time.Hour).Unix()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "old-refresh", r.FormValue("refresh_token"))
		assert.Equal(t, "id", r.FormValue("client_id"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tokenResponse{
			AccessToken:  "fresh-token",
			RefreshToken: "new-refresh",
			ExpiresAt:    newExpiry,
		})
	}))
	defer srv.Close()

	m := NewManager(Config{Dir: dir, TokenURL: srv.URL}, testLogger())

	cred, err := m.Strava(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fresh-token", cred.AccessToken)
	assert.Equal(t, "new-refresh", cred.RefreshToken)
	assert.Equal(t, newExpiry, cred.ExpiresAt)

	// The rotated triple is the new baseline on disk.
	var persisted OAuthCredential
	require.NoError(t, NewStore(dir).Load("strava", &persisted))
	assert.Equal(t, "fresh-token", persisted.AccessToken)
	assert.Equal(t, "new-refresh", persisted.RefreshToken)

	// A second call sees the fresh expiry and skips the exchange.
	_, err = m.Strava(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestStrava_RefreshFailure(t *testing.T) {
	dir := t.TempDir()
	writeCred(t, dir, "strava", OAuthCredential{
		ClientID:     "id",
		ClientSecret: "sec",
		RefreshToken: "refresh",
		ExpiresAt:    0,
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	m := NewManager(Config{Dir: dir, TokenURL: srv.URL}, testLogger())

	_, err := m.Strava(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenRefresh)
	assert.False(t, errors.Is(err, domain.ErrNoCredential))
}

func TestStore_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	in := TraktCredential{ClientID: "cid", AccessToken: "tok", TMDBAPIKey: "tmdb"}
	require.NoError(t, store.Save("trakt", &in))

	var out TraktCredential
	require.NoError(t, store.Load("trakt", &out))
	assert.Equal(t, in, out)
}
