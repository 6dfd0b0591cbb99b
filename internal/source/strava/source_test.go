package strava

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

type fakeTokenSource struct {
	cred  *credentials.OAuthCredential
	err   error
	calls int
}

func (f *fakeTokenSource) Strava(_ context.Context) (*credentials.OAuthCredential, error) {
	f.calls++
	return f.cred, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSource(baseURL string, tokens TokenSource) *Source {
	return New(Config{
		BaseURL:  baseURL,
		PageSize: 30,
		Fetch:    fetch.Config{Timeout: time.Second, MaxAttempts: 1},
	}, tokens, testLogger())
}

func TestFetchRecent_ConvertsUnits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/athlete/activities", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))

		w.Write([]byte(`[
			{
				"id": 501,
				"name": "Morning Run",
				"type": "Run",
				"start_date": "2025-06-12T06:30:00Z",
				"elapsed_time": 2712,
				"distance": 8140,
				"calories": 512.4
			}
		]`))
	}))
	defer srv.Close()

	tokens := &fakeTokenSource{cred: &credentials.OAuthCredential{AccessToken: "fresh-token"}}
	src := newTestSource(srv.URL, tokens)

	records, skipped, err := src.FetchRecent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, domain.SourceStrava, rec.Source)
	assert.Equal(t, "Morning Run", rec.Title)
	require.NotNil(t, rec.ExternalID)
	assert.Equal(t, int64(501), *rec.ExternalID)
	require.NotNil(t, rec.ActivityType)
	assert.Equal(t, "Run", *rec.ActivityType)
	require.NotNil(t, rec.DurationMin)
	assert.InDelta(t, 45.2, *rec.DurationMin, 0.001)
	require.NotNil(t, rec.DistanceKm)
	assert.InDelta(t, 8.14, *rec.DistanceKm, 0.001)
	require.NotNil(t, rec.Calories)
	assert.InDelta(t, 512.4, *rec.Calories, 0.001)
}

func TestFetchRecent_ResolvesTokenBeforeFetch(t *testing.T) {
	var sawRequest bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawRequest = true
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tokens := &fakeTokenSource{cred: &credentials.OAuthCredential{AccessToken: "t"}}
	src := newTestSource(srv.URL, tokens)

	_, _, err := src.FetchRecent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tokens.calls)
	assert.True(t, sawRequest)
}

func TestFetchRecent_TokenRefreshFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made when the token cannot be resolved")
	}))
	defer srv.Close()

	tokens := &fakeTokenSource{err: domain.ErrTokenRefresh}
	src := newTestSource(srv.URL, tokens)

	_, _, err := src.FetchRecent(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrTokenRefresh)
}

func TestFetchRecent_SkipsUnparsableDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "Bad", "type": "Ride", "start_date": "yesterday", "elapsed_time": 60, "distance": 100},
			{"id": 2, "name": "Good", "type": "Ride", "start_date": "2025-06-12T06:30:00Z", "elapsed_time": 60, "distance": 100}
		]`))
	}))
	defer srv.Close()

	tokens := &fakeTokenSource{cred: &credentials.OAuthCredential{AccessToken: "t"}}
	src := newTestSource(srv.URL, tokens)

	records, skipped, err := src.FetchRecent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Good", records[0].Title)
	assert.Nil(t, records[0].Calories)
}
