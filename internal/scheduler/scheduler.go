package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Cleaner archives expired stories. Cleanup is deliberate and
// scheduled; it is never triggered from a feed read path.
type Cleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
}

// StatsReporter computes feed-wide totals, logged once per cycle as an
// operational heartbeat. May be nil.
type StatsReporter interface {
	ComputeStats(ctx context.Context, viewerID string) (domain.FeedStats, error)
}

type Scheduler struct {
	cleaner  Cleaner
	stats    StatsReporter
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(cleaner Cleaner, stats StatsReporter, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cleaner:  cleaner,
		stats:    stats,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start runs one cleanup immediately, then on every tick until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCleanup(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCleanup(ctx)
		}
	}
}

func (s *Scheduler) runCleanup(ctx context.Context) {
	cleanupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.cleaner.CleanupExpired(cleanupCtx)
	if err != nil {
		s.logger.Error("story cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("story cleanup finished", "archived", count)
	}

	if s.stats == nil {
		return
	}
	stats, err := s.stats.ComputeStats(cleanupCtx, "")
	if err != nil {
		s.logger.Warn("stats heartbeat failed", "error", err)
		return
	}
	s.logger.Info("feed totals",
		"news", stats.TotalNews,
		"reviews", stats.TotalReviews,
		"questions", stats.TotalQuestions,
		"stories", stats.TotalStories,
		"likes", stats.TotalLikes,
		"comments", stats.TotalComments,
	)
}
