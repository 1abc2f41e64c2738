package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

const storyColumns = `id, author_id, author_name, caption, image_url, view_count, status, created_at, expires_at`

// GetActive returns live stories, most recently created first. Expiry
// is filtered in the query; archived stories never match.
func (s *StoryStore) GetActive(ctx context.Context, limit int) ([]domain.StoryFeedItem, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE status = 'active' AND expires_at > NOW()
		ORDER BY created_at DESC`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	return s.scanStories(ctx, query, args...)
}

// GetExpired returns stories past their expiry that have not been
// archived yet. The cleanup job drains this set.
func (s *StoryStore) GetExpired(ctx context.Context) ([]domain.StoryFeedItem, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE status = 'active' AND expires_at <= NOW()
		ORDER BY expires_at`

	return s.scanStories(ctx, query)
}

// Archive transitions one story to archived. The status guard makes
// the transition one-way and idempotent; archiving an archived story
// touches no rows and reports false.
func (s *StoryStore) Archive(ctx context.Context, storyID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE stories SET status = 'archived', archived_at = NOW()
		 WHERE id = $1 AND status <> 'archived'`,
		storyID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *StoryStore) scanStories(ctx context.Context, query string, args ...interface{}) ([]domain.StoryFeedItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []domain.StoryFeedItem
	for rows.Next() {
		var st domain.StoryFeedItem
		err := rows.Scan(
			&st.ID, &st.AuthorID, &st.AuthorName, &st.Caption, &st.ImageURL,
			&st.ViewCount, &st.Status, &st.CreatedAt, &st.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}
		stories = append(stories, st)
	}

	return stories, rows.Err()
}
