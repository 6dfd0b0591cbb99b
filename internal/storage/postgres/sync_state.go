package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"life_logger/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, source domain.Source) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, source, last_synced_at, total_synced
		FROM sync_state
		WHERE source = $1`

	err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &state, query, source)
	if errors.Is(err, sql.ErrNoRows) {
		// Empty state for sources that have never synced.
		return &domain.SyncState{
			Source:       source,
			LastSyncedAt: time.Time{},
			TotalSynced:  0,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (source, last_synced_at, total_synced)
		VALUES ($1, $2, $3)
		ON CONFLICT (source) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_synced = EXCLUDED.total_synced`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Source,
		state.LastSyncedAt,
		state.TotalSynced,
	)
	return err
}
