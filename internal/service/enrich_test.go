package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"life_logger/internal/domain"
	"life_logger/internal/service/mocks"
	"life_logger/testdata/utils"
)

type BackfillerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store   *mocks.MockTimelineStore
	games   *mocks.MockGameInfoClient
	posters *mocks.MockPosterClient

	backfiller *Backfiller
}

func (s *BackfillerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.store = mocks.NewMockTimelineStore(s.ctrl)
	s.games = mocks.NewMockGameInfoClient(s.ctrl)
	s.posters = mocks.NewMockPosterClient(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.backfiller = NewBackfiller(s.store, s.games, s.posters, 100, logger)
}

func (s *BackfillerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBackfillerTestSuite(t *testing.T) {
	suite.Run(t, new(BackfillerTestSuite))
}

func gameCandidate(id, gameID int64, title string) domain.EnrichmentCandidate {
	return domain.EnrichmentCandidate{
		ID:     id,
		Source: domain.SourceRetro,
		Title:  title,
		GameID: utils.Ptr(gameID),
	}
}

func posterCandidate(id int64, title, mediaType string) domain.EnrichmentCandidate {
	return domain.EnrichmentCandidate{
		ID:        id,
		Source:    domain.SourceTrakt,
		Title:     title,
		MediaType: utils.Ptr(mediaType),
	}
}

func (s *BackfillerTestSuite) TestRun_AllLookupsSucceed() {
	ctx := context.Background()

	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceRetro, 100).Return([]domain.EnrichmentCandidate{
		gameCandidate(1, 1446, "Super Metroid"),
		gameCandidate(2, 510, "Chrono Trigger"),
	}, nil)
	s.games.EXPECT().GameIcon(ctx, int64(1446)).Return("https://retroachievements.org/Images/1446.png", nil)
	s.games.EXPECT().GameIcon(ctx, int64(510)).Return("https://retroachievements.org/Images/510.png", nil)
	s.store.EXPECT().SetThumbnailByGame(ctx, int64(1446), "https://retroachievements.org/Images/1446.png").Return(nil)
	s.store.EXPECT().SetThumbnailByGame(ctx, int64(510), "https://retroachievements.org/Images/510.png").Return(nil)

	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceTrakt, 100).Return([]domain.EnrichmentCandidate{
		posterCandidate(3, "Severance - S02E05", "TV"),
	}, nil)
	s.posters.EXPECT().SearchPoster(ctx, "Severance", "TV").Return("https://image.tmdb.org/t/p/w342/sev.jpg", nil)
	s.store.EXPECT().SetThumbnail(ctx, int64(3), "https://image.tmdb.org/t/p/w342/sev.jpg").Return(nil)

	stats, err := s.backfiller.Run(ctx)

	s.NoError(err)
	s.Equal(3, stats.Candidates)
	s.Equal(3, stats.Updated)
	s.Equal(0, stats.Misses)
	s.Equal(0, stats.Errors)
}

func (s *BackfillerTestSuite) TestRun_PerCandidateFailureIsIsolated() {
	ctx := context.Background()

	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceRetro, 100).Return([]domain.EnrichmentCandidate{
		gameCandidate(1, 100, "Broken Game"),
		gameCandidate(2, 200, "Imageless Game"),
		gameCandidate(3, 300, "Fine Game"),
	}, nil)
	gomock.InOrder(
		s.games.EXPECT().GameIcon(ctx, int64(100)).Return("", errors.New("timeout")),
		s.games.EXPECT().GameIcon(ctx, int64(200)).Return("", nil),
		s.games.EXPECT().GameIcon(ctx, int64(300)).Return("https://retroachievements.org/Images/300.png", nil),
	)
	s.store.EXPECT().SetThumbnailByGame(ctx, int64(300), "https://retroachievements.org/Images/300.png").Return(nil)

	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceTrakt, 100).Return(nil, nil)

	stats, err := s.backfiller.Run(ctx)

	s.NoError(err)
	s.Equal(3, stats.Candidates)
	s.Equal(1, stats.Updated)
	s.Equal(1, stats.Misses)
	s.Equal(1, stats.Errors)
}

func (s *BackfillerTestSuite) TestRun_MovieSearchesFullTitle() {
	ctx := context.Background()

	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceRetro, 100).Return(nil, nil)
	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceTrakt, 100).Return([]domain.EnrichmentCandidate{
		posterCandidate(7, "Blade Runner 2049", "Movie"),
	}, nil)
	s.posters.EXPECT().SearchPoster(ctx, "Blade Runner 2049", "Movie").Return("https://image.tmdb.org/t/p/w342/br.jpg", nil)
	s.store.EXPECT().SetThumbnail(ctx, int64(7), "https://image.tmdb.org/t/p/w342/br.jpg").Return(nil)

	stats, err := s.backfiller.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Updated)
}

func (s *BackfillerTestSuite) TestRun_CandidateScanFailureStopsOnlyThatSource() {
	ctx := context.Background()

	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceRetro, 100).Return(nil, errors.New("db down"))
	s.store.EXPECT().EnrichmentCandidates(ctx, domain.SourceTrakt, 100).Return([]domain.EnrichmentCandidate{
		posterCandidate(9, "Heat", "Movie"),
	}, nil)
	s.posters.EXPECT().SearchPoster(ctx, "Heat", "Movie").Return("https://image.tmdb.org/t/p/w342/heat.jpg", nil)
	s.store.EXPECT().SetThumbnail(ctx, int64(9), "https://image.tmdb.org/t/p/w342/heat.jpg").Return(nil)

	stats, err := s.backfiller.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Updated)
	s.Equal(1, stats.Errors)
}

func TestLookupTitle(t *testing.T) {
	tv := posterCandidate(1, "The Bear - S03E01", "TV")
	if got := lookupTitle(tv); got != "The Bear" {
		t.Errorf("lookupTitle(tv) = %q, want %q", got, "The Bear")
	}

	movie := posterCandidate(2, "Heat - Special Edition", "Movie")
	if got := lookupTitle(movie); got != "Heat - Special Edition" {
		t.Errorf("lookupTitle(movie) = %q, want full title", got)
	}
}
