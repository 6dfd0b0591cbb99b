package domain

import "time"

// Source identifies the upstream system a record came from. The tag is part of
// every dedup key, so records from different sources can never collide.
type Source string

const (
	SourceRetro   Source = "RetroAchievements"
	SourceTrakt   Source = "Trakt"
	SourceStrava  Source = "Strava"
	SourceYouTube Source = "YouTube"
)

// TimelineRecord is one ingested activity event. Source, Timestamp and the
// identity fields are immutable once written; only Thumbnail may be filled in
// later by the enrichment backfiller.
type TimelineRecord struct {
	ID         int64      `db:"id"`
	Source     Source     `db:"source"`
	ExternalID *int64     `db:"external_id"`
	Title      string     `db:"title"`
	Timestamp  time.Time  `db:"ts"`
	URL        *string    `db:"url"`
	Thumbnail  *string    `db:"thumbnail"`

	// Game session attributes (RetroAchievements).
	ConsoleName *string `db:"console_name"`
	GameID      *int64  `db:"game_id"`

	// Media attributes (Trakt, YouTube).
	Channel   *string `db:"channel"`
	MediaType *string `db:"media_type"`
	Season    *int    `db:"season"`
	Episode   *int    `db:"episode"`

	// Workout attributes (Strava).
	ActivityType *string  `db:"activity_type"`
	DistanceKm   *float64 `db:"distance_km"`
	DurationMin  *float64 `db:"duration_min"`
	Calories     *float64 `db:"calories"`

	CreatedAt time.Time `db:"created_at"`
}

// HasExternalID reports whether the record carries a stable upstream
// identifier. Records without one dedup on (source, title, timestamp).
func (r *TimelineRecord) HasExternalID() bool {
	return r.ExternalID != nil
}

// RecordFilter narrows ListRecords results for the read-side consumer.
type RecordFilter struct {
	ExcludeSources []Source
	From           *time.Time
	To             *time.Time
	Limit          int
}

// EnrichmentCandidate is a stored record missing its thumbnail along with the
// key needed to look one up. Transient; recomputed each backfill run.
type EnrichmentCandidate struct {
	ID        int64   `db:"id"`
	Source    Source  `db:"source"`
	Title     string  `db:"title"`
	GameID    *int64  `db:"game_id"`
	MediaType *string `db:"media_type"`
}

// SyncState is the per-source run log. It records when a pass last ran and how
// much it has ingested over time; the watermark itself is always derived from
// max(ts) over the stored records, never from here.
type SyncState struct {
	ID           int64     `db:"id"`
	Source       Source    `db:"source"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}
