package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"life_logger/internal/domain"
)

// TimelineStore persists timeline records. Dedup is enforced by two partial
// unique indexes: (source, external_id) when the source has stable ids, and
// (source, title, ts) when it does not. The application-level existence check
// in Insert is only a fast path; the indexes are the authoritative guard, so
// two racing passes on the same source cannot both insert a key.
type TimelineStore struct {
	db *sqlx.DB
}

func NewTimelineStore(db *sqlx.DB) *TimelineStore {
	return &TimelineStore{db: db}
}

const recordColumns = `
	id, source, external_id, title, ts, url, thumbnail,
	console_name, game_id, channel, media_type, season, episode,
	activity_type, distance_km, duration_min, calories, created_at`

// Insert commits rec unless its dedup key already exists. Reports
// (false, nil) for a duplicate; rec.ID is set on insert.
func (s *TimelineStore) Insert(ctx context.Context, rec *domain.TimelineRecord) (bool, error) {
	ex := getExecutor(ctx, s.db)

	var exists bool
	var err error
	if rec.HasExternalID() {
		err = sqlx.GetContext(ctx, ex, &exists,
			`SELECT EXISTS (SELECT 1 FROM timeline_records WHERE source = $1 AND external_id = $2)`,
			rec.Source, *rec.ExternalID,
		)
	} else {
		err = sqlx.GetContext(ctx, ex, &exists,
			`SELECT EXISTS (SELECT 1 FROM timeline_records WHERE source = $1 AND title = $2 AND ts = $3)`,
			rec.Source, rec.Title, rec.Timestamp,
		)
	}
	if err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	if exists {
		return false, nil
	}

	query := `
		INSERT INTO timeline_records (
			source, external_id, title, ts, url, thumbnail,
			console_name, game_id, channel, media_type, season, episode,
			activity_type, distance_km, duration_min, calories
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		ON CONFLICT DO NOTHING
		RETURNING id`

	err = ex.QueryRowxContext(ctx, query,
		rec.Source,
		rec.ExternalID,
		rec.Title,
		rec.Timestamp,
		rec.URL,
		rec.Thumbnail,
		rec.ConsoleName,
		rec.GameID,
		rec.Channel,
		rec.MediaType,
		rec.Season,
		rec.Episode,
		rec.ActivityType,
		rec.DistanceKm,
		rec.DurationMin,
		rec.Calories,
	).Scan(&rec.ID)

	if errors.Is(err, sql.ErrNoRows) {
		// Lost the race to a concurrent pass; the key is stored either way.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// MaxTimestamp is the watermark query: the newest stored timestamp for a
// source, or nil when the source has no records yet.
func (s *TimelineStore) MaxTimestamp(ctx context.Context, source domain.Source) (*time.Time, error) {
	var ts sql.NullTime
	err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &ts,
		`SELECT max(ts) FROM timeline_records WHERE source = $1`, source)
	if err != nil {
		return nil, err
	}
	if !ts.Valid {
		return nil, nil
	}

	t := ts.Time.UTC()
	return &t, nil
}

// ListRecords is the read-side contract: newest first, optionally narrowed by
// source exclusion and date range.
func (s *TimelineStore) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.TimelineRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM timeline_records WHERE 1=1`
	var args []interface{}

	if len(filter.ExcludeSources) > 0 {
		excluded := make([]string, len(filter.ExcludeSources))
		for i, src := range filter.ExcludeSources {
			excluded[i] = string(src)
		}
		args = append(args, pq.Array(excluded))
		query += fmt.Sprintf(" AND NOT (source = ANY($%d))", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND ts >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND ts <= $%d", len(args))
	}

	query += " ORDER BY ts DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var records []domain.TimelineRecord
	err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &records, query, args...)
	return records, err
}

// EnrichmentCandidates lists stored records missing a thumbnail that carry a
// lookup key. Game sessions collapse to one candidate per game, since a game
// id resolves all its sessions at once.
func (s *TimelineStore) EnrichmentCandidates(ctx context.Context, source domain.Source, limit int) ([]domain.EnrichmentCandidate, error) {
	var query string
	switch source {
	case domain.SourceRetro:
		query = `
			SELECT DISTINCT ON (game_id) id, source, title, game_id, media_type
			FROM timeline_records
			WHERE source = $1 AND thumbnail IS NULL AND game_id IS NOT NULL
			ORDER BY game_id, ts DESC
			LIMIT $2`
	default:
		query = `
			SELECT id, source, title, game_id, media_type
			FROM timeline_records
			WHERE source = $1 AND thumbnail IS NULL AND media_type IS NOT NULL
			ORDER BY ts DESC
			LIMIT $2`
	}

	var candidates []domain.EnrichmentCandidate
	err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &candidates, query, source, limit)
	return candidates, err
}

// SetThumbnail fills the enrichment field of one record. Identity fields are
// never touched after insert.
func (s *TimelineStore) SetThumbnail(ctx context.Context, id int64, url string) error {
	_, err := getExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE timeline_records SET thumbnail = $2 WHERE id = $1`, id, url)
	return err
}

// SetThumbnailByGame fills the thumbnail of every session of a game that
// still lacks one.
func (s *TimelineStore) SetThumbnailByGame(ctx context.Context, gameID int64, url string) error {
	_, err := getExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE timeline_records
		 SET thumbnail = $3
		 WHERE source = $1 AND game_id = $2 AND thumbnail IS NULL`,
		domain.SourceRetro, gameID, url)
	return err
}
