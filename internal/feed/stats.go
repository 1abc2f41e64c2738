package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Placeholder values reported until a per-viewer last-seen watermark
// exists. MarkSeen already records the raw data; the aggregation over
// it is still open.
const (
	placeholderUnseen   = 0
	placeholderTrending = 0
	placeholderFriends  = 0
)

// StatsComputer sums engagement counters across whole sources, not just
// the items on the current page.
type StatsComputer struct {
	news      NewsSource
	reviews   ReviewSource
	questions QuestionSource
	stories   StorySource
	logger    *slog.Logger
}

func NewStatsComputer(news NewsSource, reviews ReviewSource, questions QuestionSource, stories StorySource, logger *slog.Logger) *StatsComputer {
	return &StatsComputer{
		news:      news,
		reviews:   reviews,
		questions: questions,
		stories:   stories,
		logger:    logger.With("component", "stats"),
	}
}

// ComputeStats totals each source. A failed source contributes zero to
// the totals rather than failing the whole computation.
func (s *StatsComputer) ComputeStats(ctx context.Context, viewerID string) (domain.FeedStats, error) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		stats domain.FeedStats
	)

	sum := func(items []domain.FeedItem, total *int) {
		mu.Lock()
		defer mu.Unlock()
		*total = len(items)
		for _, it := range items {
			stats.TotalLikes += it.LikeCount
			stats.TotalComments += it.CommentCount
			stats.TotalShares += it.ShareCount
			stats.TotalViews += it.ViewCount
		}
	}

	fetches := []struct {
		name  string
		run   func(ctx context.Context) ([]domain.FeedItem, error)
		total *int
	}{
		{"news", func(ctx context.Context) ([]domain.FeedItem, error) { return s.news.GetPublished(ctx, 0) }, &stats.TotalNews},
		{"reviews", func(ctx context.Context) ([]domain.FeedItem, error) { return s.reviews.GetApproved(ctx, 0) }, &stats.TotalReviews},
		{"questions", func(ctx context.Context) ([]domain.FeedItem, error) { return s.questions.GetAll(ctx, 0) }, &stats.TotalQuestions},
	}

	for _, f := range fetches {
		wg.Add(1)
		go func(name string, run func(ctx context.Context) ([]domain.FeedItem, error), total *int) {
			defer wg.Done()
			items, err := run(ctx)
			if err != nil {
				s.logger.Warn("stats fetch failed", "source", name, "error", err)
				return
			}
			sum(items, total)
		}(f.name, f.run, f.total)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		stories, err := s.stories.GetActive(ctx, 0)
		if err != nil {
			s.logger.Warn("stats fetch failed", "source", "stories", "error", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		stats.TotalStories = len(stories)
		for _, st := range stories {
			stats.TotalViews += st.ViewCount
		}
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return domain.FeedStats{}, err
	}

	stats.UnseenItems = placeholderUnseen
	stats.TrendingItems = placeholderTrending
	stats.FriendsItems = placeholderFriends

	return stats, nil
}
