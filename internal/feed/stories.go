package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// StoryManager owns the stories lifecycle: surfacing active stories to
// feeds and archiving the ones whose lifetime has passed. A story is
// "expired" purely by the time predicate; "archived" is the only
// persisted terminal state.
type StoryManager struct {
	stories StorySource
	events  EventPublisher // optional; archived stories are announced
	cap     int
	logger  *slog.Logger
}

func NewStoryManager(stories StorySource, events EventPublisher, cap int, logger *slog.Logger) *StoryManager {
	if cap < 1 {
		cap = 20
	}
	return &StoryManager{
		stories: stories,
		events:  events,
		cap:     cap,
		logger:  logger.With("component", "stories"),
	}
}

// ActiveStories returns non-expired stories, most recent first, capped,
// each annotated with the remaining lifetime. The expiry check repeats
// here so a story past its deadline never surfaces even before the
// cleanup job has archived it.
func (m *StoryManager) ActiveStories(ctx context.Context, viewerID string) ([]domain.StoryFeedItem, error) {
	stories, err := m.stories.GetActive(ctx, m.cap)
	if err != nil {
		return nil, fmt.Errorf("fetch active stories: %w", err)
	}

	now := time.Now()
	out := make([]domain.StoryFeedItem, 0, len(stories))
	for _, s := range stories {
		if s.Expired(now) {
			continue
		}
		s.TimeRemaining = domain.TimeRemaining(s.ExpiresAt, now)
		out = append(out, s)
		if len(out) == m.cap {
			break
		}
	}
	return out, nil
}

// CleanupExpired archives every story whose expiry has passed and
// returns how many actually transitioned. Archival is one-way and the
// store skips already-archived rows, so repeated calls are no-ops.
// This is the only mutation on the story path and is never run as a
// side effect of a feed read.
func (m *StoryManager) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := m.stories.GetExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch expired stories: %w", err)
	}

	archived := 0
	for _, s := range expired {
		if err := ctx.Err(); err != nil {
			return archived, err
		}
		done, err := m.stories.Archive(ctx, s.ID)
		if err != nil {
			m.logger.Warn("archive failed", "story_id", s.ID, "error", err)
			continue
		}
		if !done {
			continue
		}
		archived++

		if m.events != nil {
			event := domain.ModerationEvent{
				Action:      "story_archived",
				ViewerID:    s.AuthorID,
				ContentID:   s.ID,
				ContentType: domain.ContentStory,
				Timestamp:   time.Now().UTC(),
			}
			if err := m.events.Publish(ctx, event); err != nil {
				m.logger.Warn("archive event publish failed", "story_id", s.ID, "error", err)
			}
		}
	}

	if archived > 0 {
		m.logger.Info("archived expired stories", "count", archived)
	}
	return archived, nil
}
