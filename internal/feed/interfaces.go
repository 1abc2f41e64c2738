package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// NewsSource reads published news items. A limit <= 0 means no cap.
type NewsSource interface {
	GetPublished(ctx context.Context, limit int) ([]domain.FeedItem, error)
}

// ReviewSource reads approved car reviews.
type ReviewSource interface {
	GetApproved(ctx context.Context, limit int) ([]domain.FeedItem, error)
}

// QuestionSource reads community Q&A posts.
type QuestionSource interface {
	GetAll(ctx context.Context, limit int) ([]domain.FeedItem, error)
}

// StorySource reads and archives ephemeral stories. GetActive and
// GetExpired only ever return stories that have not been archived.
type StorySource interface {
	GetActive(ctx context.Context, limit int) ([]domain.StoryFeedItem, error)
	GetExpired(ctx context.Context) ([]domain.StoryFeedItem, error)
	// Archive transitions one story to the archived state. It reports
	// whether the transition actually happened, so archiving an
	// already-archived story is a no-op returning false.
	Archive(ctx context.Context, storyID string) (bool, error)
}

// InteractionStore looks up and mutates per-viewer interaction state,
// keyed by (viewer, content id, content type).
type InteractionStore interface {
	GetReaction(ctx context.Context, contentID string, contentType domain.ContentType, viewerID string) (bool, error)
	GetBookmark(ctx context.Context, contentID string, contentType domain.ContentType, viewerID string) (bool, error)
	// ToggleBookmark flips the bookmark state atomically and returns
	// the new state.
	ToggleBookmark(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) (bool, error)
	MarkSeen(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) error
}

// CommentReader pages through comments for one piece of content.
type CommentReader interface {
	GetComments(ctx context.Context, contentID string, contentType domain.ContentType, page, pageSize int) ([]domain.Comment, error)
}

// SocialGraph resolves the viewer's social context. Externally owned;
// the feed core never writes to it.
type SocialGraph interface {
	FriendIDs(ctx context.Context, viewerID string) ([]string, error)
	Interests(ctx context.Context, viewerID string) ([]string, error)
	Suggestions(ctx context.Context, viewerID string, limit int) ([]domain.FriendSuggestion, error)
}

// UserDirectory resolves author display names. Lookup failures only
// cost the display name, never ranking correctness.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// EventPublisher emits interaction events for downstream consumers
// (moderation queue, activity log).
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ModerationEvent) error
	Close() error
}
