package retro

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_logger/internal/credentials"
	"life_logger/internal/domain"
	"life_logger/internal/source/fetch"
)

type staticCreds struct {
	cred *credentials.APIKeyCredential
	err  error
}

func (c *staticCreds) Retro() (*credentials.APIKeyCredential, error) {
	return c.cred, c.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSource(baseURL string) *Source {
	return New(Config{
		BaseURL: baseURL,
		Fetch:   fetch.Config{Timeout: time.Second, MaxAttempts: 1},
	}, &staticCreds{cred: &credentials.APIKeyCredential{Username: "player1", APIKey: "key"}}, testLogger())
}

func TestFetchRecent_NormalizesSessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/API/API_GetUserRecentlyPlayedGames.php", r.URL.Path)
		assert.Equal(t, "player1", r.URL.Query().Get("z"))
		assert.Equal(t, "key", r.URL.Query().Get("y"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"GameID": 1446, "Title": "Super Metroid", "ConsoleName": "SNES", "LastPlayed": "2025-06-01 20:15:00"},
			{"GameID": 510, "Title": "Chrono Trigger", "ConsoleName": "SNES", "LastPlayed": "2025-06-02 09:30:00"}
		]`))
	}))
	defer srv.Close()

	src := newTestSource(srv.URL)

	records, skipped, err := src.FetchRecent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 2)

	rec := records[0]
	assert.Equal(t, domain.SourceRetro, rec.Source)
	assert.Equal(t, "Super Metroid", rec.Title)
	assert.Equal(t, time.Date(2025, 6, 1, 20, 15, 0, 0, time.UTC), rec.Timestamp)
	require.NotNil(t, rec.ConsoleName)
	assert.Equal(t, "SNES", *rec.ConsoleName)
	require.NotNil(t, rec.GameID)
	assert.Equal(t, int64(1446), *rec.GameID)
	// Sessions have no stable upstream id; the writer dedups on title+ts.
	assert.Nil(t, rec.ExternalID)
}

func TestFetchRecent_SkipsUnparsableDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"GameID": 1, "Title": "Bad Date Game", "ConsoleName": "NES", "LastPlayed": "not-a-date"},
			{"GameID": 2, "Title": "Good Game", "ConsoleName": "NES", "LastPlayed": "2025-06-01 10:00:00"}
		]`))
	}))
	defer srv.Close()

	src := newTestSource(srv.URL)

	records, skipped, err := src.FetchRecent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Good Game", records[0].Title)
}

func TestFetchRecent_UpstreamErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := newTestSource(srv.URL)

	_, _, err := src.FetchRecent(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamStatus)
}

func TestFetchRecent_NoCredential(t *testing.T) {
	src := New(Config{
		BaseURL: "http://unused",
		Fetch:   fetch.Config{Timeout: time.Second, MaxAttempts: 1},
	}, &staticCreds{err: domain.ErrNoCredential}, testLogger())

	_, _, err := src.FetchRecent(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestGameIcon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/API/API_GetGame.php", r.URL.Path)
		assert.Equal(t, "1446", r.URL.Query().Get("i"))
		w.Write([]byte(`{"ImageIcon": "/Images/000001.png"}`))
	}))
	defer srv.Close()

	src := newTestSource(srv.URL)

	icon, err := src.GameIcon(context.Background(), 1446)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/Images/000001.png", icon)
}

func TestGameIcon_NoImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	src := newTestSource(srv.URL)

	icon, err := src.GameIcon(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, "", icon)
}
