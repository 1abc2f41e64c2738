package feed

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// TrendingComputer derives trending topics from news tags and car-make
// facets. Topics are a view over current source data, recomputed per
// request and never persisted. This is a simplified model without
// engagement velocity; it can be swapped out behind the same contract.
type TrendingComputer struct {
	news    NewsSource
	reviews ReviewSource
	logger  *slog.Logger
}

func NewTrendingComputer(news NewsSource, reviews ReviewSource, logger *slog.Logger) *TrendingComputer {
	return &TrendingComputer{
		news:    news,
		reviews: reviews,
		logger:  logger.With("component", "trending"),
	}
}

type topicAccum struct {
	label      string
	category   string
	posts      int
	engagement int
	lastActive time.Time
}

// ComputeTrendingTopics returns at most limit topics: tag topics from
// news fill half the budget, car-make facets the rest, merged and
// sorted by trending score descending.
func (t *TrendingComputer) ComputeTrendingTopics(ctx context.Context, limit int) ([]domain.TrendingTopic, error) {
	if limit <= 0 {
		return nil, nil
	}

	newsItems, err := t.news.GetPublished(ctx, 0)
	if err != nil {
		return nil, err
	}
	reviewItems, err := t.reviews.GetApproved(ctx, 0)
	if err != nil {
		t.logger.Warn("review fetch failed, car-make facets skipped", "error", err)
		reviewItems = nil
	}

	tagHalf := limit / 2
	if tagHalf == 0 {
		tagHalf = 1
	}
	makeHalf := limit - tagHalf

	tags := accumulate(newsItems, "tag", func(it domain.FeedItem) []string {
		return it.Tags
	})
	makes := accumulate(append(newsItems, reviewItems...), "car_make", func(it domain.FeedItem) []string {
		if it.CarMake == nil || *it.CarMake == "" {
			return nil
		}
		return []string{*it.CarMake}
	})

	topics := append(topN(tags, tagHalf), topN(makes, makeHalf)...)

	now := time.Now()
	out := make([]domain.TrendingTopic, 0, len(topics))
	for _, acc := range topics {
		out = append(out, domain.TrendingTopic{
			Topic:           acc.label,
			Category:        acc.category,
			PostCount:       acc.posts,
			EngagementCount: acc.engagement,
			TrendingScore:   float64(acc.posts)*10 + float64(acc.engagement),
			LastActivityAt:  acc.lastActive,
			TimeAgo:         domain.TimeAgo(acc.lastActive, now),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrendingScore > out[j].TrendingScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func accumulate(items []domain.FeedItem, category string, labels func(domain.FeedItem) []string) map[string]*topicAccum {
	accums := make(map[string]*topicAccum)
	for _, it := range items {
		for _, label := range labels(it) {
			key := strings.ToLower(strings.TrimSpace(label))
			if key == "" {
				continue
			}
			acc, ok := accums[key]
			if !ok {
				acc = &topicAccum{label: label, category: category}
				accums[key] = acc
			}
			acc.posts++
			acc.engagement += it.LikeCount + it.CommentCount
			if it.CreatedAt.After(acc.lastActive) {
				acc.lastActive = it.CreatedAt
			}
		}
	}
	return accums
}

func topN(accums map[string]*topicAccum, n int) []*topicAccum {
	list := make([]*topicAccum, 0, len(accums))
	for _, acc := range accums {
		list = append(list, acc)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].posts != list[j].posts {
			return list[i].posts > list[j].posts
		}
		return list[i].label < list[j].label
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}
