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

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/config"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/feed"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/publisher"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/scheduler"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/storage/postgres"
)

// feedd is the feed maintenance daemon: it archives expired stories on
// a schedule, announces archivals on the event exchange and logs feed
// totals as a heartbeat. The feed read API itself is a library
// (internal/feed) consumed by the web application.
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

	events, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer events.Close()

	newsStore := postgres.NewNewsStore(db)
	reviewStore := postgres.NewReviewStore(db)
	questionStore := postgres.NewQuestionStore(db)
	storyStore := postgres.NewStoryStore(db)

	stories := feed.NewStoryManager(storyStore, events, cfg.Feed.ActiveStoryCap, logger)
	stats := feed.NewStatsComputer(newsStore, reviewStore, questionStore, storyStore, logger)

	sched := scheduler.NewScheduler(stories, stats, cfg.Cleanup.Interval, cfg.Cleanup.Timeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed maintenance daemon",
		"cleanup_interval", cfg.Cleanup.Interval,
		"cleanup_timeout", cfg.Cleanup.Timeout,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
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
