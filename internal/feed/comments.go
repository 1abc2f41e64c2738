package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Annotator eagerly loads a short comment prefix onto feed items after
// ranking, so the first screen renders without a second round trip.
type Annotator struct {
	comments CommentReader
	prefix   int
	workers  int
	logger   *slog.Logger
}

func NewAnnotator(comments CommentReader, prefix, workers int, logger *slog.Logger) *Annotator {
	if prefix < 1 {
		prefix = 3
	}
	if workers < 1 {
		workers = 1
	}
	return &Annotator{
		comments: comments,
		prefix:   prefix,
		workers:  workers,
		logger:   logger.With("component", "annotator"),
	}
}

// LoadInitialComments attaches the first comments to every item in
// place. A failed load leaves that item with an empty list; the rest of
// the page is unaffected.
func (a *Annotator) LoadInitialComments(ctx context.Context, items []domain.FeedItem, viewerID string) {
	if len(items) == 0 {
		return
	}

	sem := make(chan struct{}, a.workers)
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(item *domain.FeedItem) {
			defer wg.Done()
			defer func() { <-sem }()

			comments, err := a.comments.GetComments(ctx, item.ID, item.ContentType, 1, a.prefix)
			if err != nil {
				a.logger.Debug("comment load failed",
					"content_id", item.ID,
					"content_type", item.ContentType,
					"error", err,
				)
				item.InitialComments = []domain.Comment{}
				return
			}
			if len(comments) > a.prefix {
				comments = comments[:a.prefix]
			}
			item.InitialComments = comments
		}(&items[i])
	}
	wg.Wait()
}
