// Package credentials loads per-source secret material from small JSON blobs
// and keeps OAuth tokens fresh, persisting rotated tokens back so later runs
// reuse them instead of re-refreshing.
package credentials

// APIKeyCredential is static key material, immutable for the process lifetime.
type APIKeyCredential struct {
	Username string `json:"username"`
	APIKey   string `json:"api_key"`
}

// TraktCredential carries the Trakt app id, a long-lived access token and the
// TMDB key used for poster lookups.
type TraktCredential struct {
	ClientID    string `json:"client_id"`
	AccessToken string `json:"access_token"`
	TMDBAPIKey  string `json:"tmdb_api_key"`
}

// OAuthCredential is a refreshable access/refresh/expiry triple. ExpiresAt is
// a unix timestamp, matching what the Strava token endpoint returns.
type OAuthCredential struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}
