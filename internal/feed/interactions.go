package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Interactions exposes the viewer-initiated actions keyed by
// (viewer, content id, content type). Each action also emits an event
// so a moderation or activity consumer can be attached downstream
// without changing these signatures.
type Interactions struct {
	store  InteractionStore
	events EventPublisher
	logger *slog.Logger
}

func NewInteractions(store InteractionStore, events EventPublisher, logger *slog.Logger) *Interactions {
	return &Interactions{
		store:  store,
		events: events,
		logger: logger.With("component", "interactions"),
	}
}

// Bookmark toggles the bookmark for the triple and returns the new
// state. Two racing toggles for the same triple can double-flip; that
// is accepted rather than serialized per triple.
func (i *Interactions) Bookmark(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) (bool, error) {
	if viewerID == "" || contentID == "" {
		return false, fmt.Errorf("bookmark requires viewer and content ids")
	}

	bookmarked, err := i.store.ToggleBookmark(ctx, viewerID, contentID, contentType)
	if err != nil {
		return false, fmt.Errorf("toggle bookmark: %w", err)
	}

	detail := "removed"
	if bookmarked {
		detail = "added"
	}
	i.emit(ctx, "bookmark", viewerID, contentID, contentType, detail)

	return bookmarked, nil
}

// Report acknowledges a report. No moderation state is persisted here;
// the emitted event is the handoff point for a future moderation queue.
func (i *Interactions) Report(ctx context.Context, viewerID, contentID string, contentType domain.ContentType, reason string) error {
	i.logger.Info("content reported",
		"viewer_id", viewerID,
		"content_id", contentID,
		"content_type", contentType,
		"reason", reason,
	)
	i.emit(ctx, "report", viewerID, contentID, contentType, reason)
	return nil
}

// Hide acknowledges a hide request for this viewer.
func (i *Interactions) Hide(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) error {
	i.logger.Info("content hidden",
		"viewer_id", viewerID,
		"content_id", contentID,
		"content_type", contentType,
	)
	i.emit(ctx, "hide", viewerID, contentID, contentType, "")
	return nil
}

// MarkSeen records that the viewer has seen the content. The record is
// the groundwork for a last-seen watermark; feed stats do not consume
// it yet.
func (i *Interactions) MarkSeen(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) error {
	if viewerID == "" {
		return nil
	}
	if err := i.store.MarkSeen(ctx, viewerID, contentID, contentType); err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	i.emit(ctx, "seen", viewerID, contentID, contentType, "")
	return nil
}

// emit publishes best-effort; a broker outage never fails the action.
func (i *Interactions) emit(ctx context.Context, action, viewerID, contentID string, contentType domain.ContentType, detail string) {
	if i.events == nil {
		return
	}
	event := domain.ModerationEvent{
		Action:      action,
		ViewerID:    viewerID,
		ContentID:   contentID,
		ContentType: contentType,
		Detail:      detail,
		Timestamp:   time.Now().UTC(),
	}
	if err := i.events.Publish(ctx, event); err != nil {
		i.logger.Warn("event publish failed", "action", action, "error", err)
	}
}
