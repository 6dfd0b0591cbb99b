package domain

import "time"

// SyncStats holds statistics about one sync pass.
type SyncStats struct {
	Source     Source
	Fetched    int
	New        int
	Skipped    int // already stored, rejected by the dedup key
	ParseSkips int // dropped by the adapter for unparsable fields
	Errors     int
	Published  int
	Duration   time.Duration
}

// EnrichStats holds statistics about one enrichment backfill sweep.
type EnrichStats struct {
	Candidates int
	Updated    int
	Misses     int // upstream had no image; retried on the next sweep
	Errors     int
	Duration   time.Duration
}
