package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/config"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Aggregator fans out to the content sources for one request, scores
// each item for the viewer and attaches per-viewer interaction flags.
type Aggregator struct {
	news         NewsSource
	reviews      ReviewSource
	questions    QuestionSource
	stories      StorySource
	interactions InteractionStore
	users        UserDirectory
	scorer       *RelevanceScorer
	cfg          config.FeedConfig
	logger       *slog.Logger
}

func NewAggregator(
	news NewsSource,
	reviews ReviewSource,
	questions QuestionSource,
	stories StorySource,
	interactions InteractionStore,
	users UserDirectory,
	scorer *RelevanceScorer,
	cfg config.FeedConfig,
	logger *slog.Logger,
) *Aggregator {
	return &Aggregator{
		news:         news,
		reviews:      reviews,
		questions:    questions,
		stories:      stories,
		interactions: interactions,
		users:        users,
		scorer:       scorer,
		cfg:          cfg,
		logger:       logger.With("component", "aggregator"),
	}
}

type sourceFetch struct {
	contentType domain.ContentType
	fetch       func(ctx context.Context) ([]domain.FeedItem, error)
}

// Aggregate collects candidate items for one feed request. A failing
// source degrades to an empty result for this request; the error never
// escapes the aggregation. Friends mode with no viewer returns nothing
// without touching any source.
func (a *Aggregator) Aggregate(ctx context.Context, mode domain.FeedMode, req domain.FeedRequest, interests, friendIDs []string) ([]domain.FeedItem, error) {
	if mode == domain.ModeFriends && req.ViewerID == "" {
		return nil, nil
	}

	fetches := a.selectSources(mode, req)
	if len(fetches) == 0 {
		return nil, nil
	}

	// Sources share no state, so the fan-out runs concurrently and the
	// results join in fixed source order to keep output deterministic.
	results := make([][]domain.FeedItem, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, f sourceFetch) {
			defer wg.Done()
			items, err := f.fetch(ctx)
			if err != nil {
				a.logger.Warn("source fetch failed, degrading to empty",
					"content_type", f.contentType,
					"error", err,
				)
				return
			}
			results[i] = items
		}(i, f)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	var items []domain.FeedItem
	for _, batch := range results {
		items = append(items, batch...)
	}

	for i := range items {
		item := &items[i]
		item.RelevanceScore = a.scorer.Score(item.Tags, derefStr(item.CarMake), interests)
		item.ReasonForShowing = a.scorer.Reason(item.RelevanceScore, item.Tags, interests)
		item.TimeAgo = domain.TimeAgo(item.CreatedAt, now)
	}

	a.enrich(ctx, items, req.ViewerID)

	return items, nil
}

// selectSources picks the fetch set for the request mode. Unknown
// content-type names yield no sources, which surfaces as an empty feed
// rather than an error.
func (a *Aggregator) selectSources(mode domain.FeedMode, req domain.FeedRequest) []sourceFetch {
	all := []sourceFetch{
		{domain.ContentNews, func(ctx context.Context) ([]domain.FeedItem, error) {
			return a.news.GetPublished(ctx, a.cfg.NewsFetchCap)
		}},
		{domain.ContentReview, func(ctx context.Context) ([]domain.FeedItem, error) {
			return a.reviews.GetApproved(ctx, a.cfg.ReviewFetchCap)
		}},
		{domain.ContentQuestion, func(ctx context.Context) ([]domain.FeedItem, error) {
			return a.questions.GetAll(ctx, a.cfg.QuestionFetchCap)
		}},
		{domain.ContentStory, func(ctx context.Context) ([]domain.FeedItem, error) {
			return a.fetchStoryItems(ctx)
		}},
	}

	if mode != domain.ModeSingleSource && req.ContentType == "" {
		return all
	}

	ct, ok := domain.ParseContentType(req.ContentType)
	if !ok {
		return nil
	}
	for _, f := range all {
		if f.contentType == ct {
			return []sourceFetch{f}
		}
	}
	return nil
}

func (a *Aggregator) fetchStoryItems(ctx context.Context) ([]domain.FeedItem, error) {
	stories, err := a.stories.GetActive(ctx, a.cfg.StoryFetchCap)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]domain.FeedItem, 0, len(stories))
	for _, s := range stories {
		if s.Expired(now) {
			continue
		}
		items = append(items, domain.FeedItem{
			ID:          s.ID,
			ContentType: domain.ContentStory,
			Title:       derefStr(s.Caption),
			ImageURL:    s.ImageURL,
			AuthorID:    s.AuthorID,
			AuthorName:  s.AuthorName,
			ViewCount:   s.ViewCount,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.CreatedAt,
			IsExpired:   false,
		})
	}
	return items, nil
}

// enrich attaches viewer flags and author names per item. Lookups are
// independent across items, so they run on a bounded worker pool; a
// failed lookup costs only that item's flag or name.
func (a *Aggregator) enrich(ctx context.Context, items []domain.FeedItem, viewerID string) {
	if len(items) == 0 {
		return
	}

	workers := a.cfg.WorkerCap
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(item *domain.FeedItem) {
			defer wg.Done()
			defer func() { <-sem }()

			if item.AuthorName == "" && item.AuthorID != "" {
				name, err := a.users.DisplayName(ctx, item.AuthorID)
				if err != nil {
					a.logger.Debug("author lookup failed", "author_id", item.AuthorID, "error", err)
				} else {
					item.AuthorName = name
				}
			}

			if viewerID == "" {
				return
			}
			liked, err := a.interactions.GetReaction(ctx, item.ID, item.ContentType, viewerID)
			if err != nil {
				a.logger.Debug("reaction lookup failed", "content_id", item.ID, "error", err)
			} else {
				item.IsLikedByUser = liked
			}
			bookmarked, err := a.interactions.GetBookmark(ctx, item.ID, item.ContentType, viewerID)
			if err != nil {
				a.logger.Debug("bookmark lookup failed", "content_id", item.ID, "error", err)
			} else {
				item.IsBookmarkedByUser = bookmarked
			}
		}(&items[i])
	}
	wg.Wait()
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
