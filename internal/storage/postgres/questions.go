package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

type QuestionStore struct {
	db *sqlx.DB
}

func NewQuestionStore(db *sqlx.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

// GetAll returns visible Q&A posts, newest first. Questions have no
// moderation gate; hidden ones are excluded.
func (s *QuestionStore) GetAll(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	query := `
		SELECT id, title, title_ar, body, body_ar, image_url,
		       author_id, view_count, like_count, comment_count, share_count,
		       tags, car_make, car_model, car_year, car_display_name,
		       is_trending, is_answered, created_at, updated_at
		FROM questions
		WHERE is_hidden = FALSE
		ORDER BY created_at DESC`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.FeedItem
	for rows.Next() {
		var it domain.FeedItem
		var tags pq.StringArray
		err := rows.Scan(
			&it.ID, &it.Title, &it.TitleAr, &it.Body, &it.BodyAr, &it.ImageURL,
			&it.AuthorID, &it.ViewCount, &it.LikeCount, &it.CommentCount, &it.ShareCount,
			&tags, &it.CarMake, &it.CarModel, &it.CarYear, &it.CarDisplayName,
			&it.IsTrending, &it.IsAnswered, &it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		it.ContentType = domain.ContentQuestion
		it.Tags = tags
		items = append(items, it)
	}

	return items, rows.Err()
}
