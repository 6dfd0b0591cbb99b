package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"life_logger/internal/config"
	"life_logger/internal/credentials"
	"life_logger/internal/enrich"
	"life_logger/internal/publisher"
	"life_logger/internal/scheduler"
	"life_logger/internal/service"
	"life_logger/internal/source/fetch"
	"life_logger/internal/source/retro"
	"life_logger/internal/source/strava"
	"life_logger/internal/source/trakt"
	"life_logger/internal/source/youtube"
	"life_logger/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	timelineStore := postgres.NewTimelineStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	creds := credentials.NewManager(credentials.Config{
		Dir:      cfg.Credentials.Dir,
		TokenURL: cfg.Strava.TokenURL,
		Timeout:  cfg.Strava.Timeout,
	}, logger)

	var sources []service.Source

	retroSource := retro.New(retro.Config{
		BaseURL: cfg.Retro.BaseURL,
		Fetch:   fetchConfig(cfg.Retro),
	}, creds, logger)
	if cfg.Retro.Enabled {
		sources = append(sources, retroSource)
	}

	if cfg.Trakt.Enabled {
		sources = append(sources, trakt.New(trakt.Config{
			BaseURL:  cfg.Trakt.BaseURL,
			PageSize: cfg.Trakt.PageSize,
			Fetch:    fetchConfig(cfg.Trakt),
		}, creds, logger))
	}

	if cfg.Strava.Enabled {
		sources = append(sources, strava.New(strava.Config{
			BaseURL:  cfg.Strava.BaseURL,
			PageSize: cfg.Strava.PageSize,
			Fetch:    fetchConfig(cfg.Strava.APIConfig),
		}, creds, logger))
	}

	if cfg.YouTube.Enabled {
		sources = append(sources, youtube.New(youtube.Config{
			HistoryPath: cfg.YouTube.HistoryPath,
			MaxEntries:  cfg.YouTube.MaxEntries,
		}, logger))
	}

	if len(sources) == 0 {
		logger.Error("no sources enabled")
		os.Exit(1)
	}

	syncers := make([]scheduler.Syncer, 0, len(sources))
	for _, src := range sources {
		syncers = append(syncers, service.NewSyncService(
			src,
			timelineStore,
			syncStateStore,
			txManager,
			rabbitMQ,
			logger,
		))
	}

	// Backfill lookups: game icons come from the retro adapter itself,
	// posters from TMDB. Either is skipped when its source is disabled.
	var games service.GameInfoClient
	if cfg.Retro.Enabled {
		games = retroSource
	}
	var posters service.PosterClient
	if cfg.Trakt.Enabled {
		posters = enrich.NewTMDBClient(enrich.TMDBConfig{
			BaseURL: cfg.TMDB.BaseURL,
			Fetch:   fetchConfig(cfg.TMDB),
		}, creds, logger)
	}

	backfiller := service.NewBackfiller(timelineStore, games, posters, cfg.Enrich.BatchLimit, logger)

	sched := scheduler.NewScheduler(syncers, backfiller, cfg.Sync.Interval, cfg.Sync.PassTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting life logger syncer",
		"sources", len(sources),
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func fetchConfig(api config.APIConfig) fetch.Config {
	return fetch.Config{
		Timeout:        api.Timeout,
		MaxAttempts:    api.Retry.MaxAttempts,
		InitialBackoff: api.Retry.InitialBackoff,
		MaxBackoff:     api.Retry.MaxBackoff,
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
