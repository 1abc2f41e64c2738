package feed

import (
	"sort"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// SortItems returns a new slice ordered by the requested mode. The sort
// is stable so repeated requests over identical inputs produce the same
// order.
func SortItems(items []domain.FeedItem, mode domain.SortMode) []domain.FeedItem {
	sorted := make([]domain.FeedItem, len(items))
	copy(sorted, items)

	switch mode {
	case domain.SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case domain.SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return popularity(sorted[i]) > popularity(sorted[j])
		})
	case domain.SortTrending:
		// Trending items always rank ahead of non-trending ones,
		// regardless of relevance score.
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].IsTrending != sorted[j].IsTrending {
				return sorted[i].IsTrending
			}
			return sorted[i].RelevanceScore > sorted[j].RelevanceScore
		})
	case domain.SortEngagement:
		sort.SliceStable(sorted, func(i, j int) bool {
			return engagement(sorted[i]) > engagement(sorted[j])
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RelevanceScore > sorted[j].RelevanceScore
		})
	}

	return sorted
}

func popularity(it domain.FeedItem) int {
	return it.LikeCount + it.CommentCount
}

func engagement(it domain.FeedItem) int {
	return it.LikeCount + it.CommentCount + it.ShareCount
}

// PaginateItems slices one page out of the ranked list. Out-of-range
// pages yield an empty slice; the skip is clamped at zero so malformed
// page numbers cannot produce a negative offset.
func PaginateItems(items []domain.FeedItem, page, pageSize int) []domain.FeedItem {
	if pageSize <= 0 {
		return nil
	}

	skip := (page - 1) * pageSize
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return nil
	}

	end := skip + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
