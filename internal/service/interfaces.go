package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"life_logger/internal/domain"
)

type TimelineStore interface {
	// Insert commits the record unless its dedup key already exists, in
	// which case it reports (false, nil).
	Insert(ctx context.Context, rec *domain.TimelineRecord) (bool, error)
	// MaxTimestamp is the watermark query; nil means no records stored yet.
	MaxTimestamp(ctx context.Context, source domain.Source) (*time.Time, error)
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.TimelineRecord, error)
	EnrichmentCandidates(ctx context.Context, source domain.Source, limit int) ([]domain.EnrichmentCandidate, error)
	SetThumbnail(ctx context.Context, id int64, url string) error
	SetThumbnailByGame(ctx context.Context, gameID int64, url string) error
}

type SyncStateStore interface {
	Get(ctx context.Context, source domain.Source) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type Source interface {
	ID() domain.Source
	Name() string
	// FetchRecent returns normalized records in upstream order plus the
	// count of records dropped for unparsable fields.
	FetchRecent(ctx context.Context, cutoff *time.Time) ([]domain.TimelineRecord, int, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, rec *domain.TimelineRecord) error
	Close() error
}

type GameInfoClient interface {
	GameIcon(ctx context.Context, gameID int64) (string, error)
}

type PosterClient interface {
	SearchPoster(ctx context.Context, title, mediaType string) (string, error)
}
