package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

// GetPublished returns published news, newest first. limit <= 0 fetches
// everything (used by stats and trending, which sum whole sources).
func (s *NewsStore) GetPublished(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	query := `
		SELECT id, title, title_ar, summary, summary_ar, body, body_ar, image_url,
		       author_id, view_count, like_count, comment_count, share_count,
		       tags, car_make, car_model, car_year, car_display_name,
		       is_trending, is_featured, created_at, updated_at
		FROM news
		WHERE is_published = TRUE
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
			&it.ID, &it.Title, &it.TitleAr, &it.Summary, &it.SummaryAr, &it.Body, &it.BodyAr, &it.ImageURL,
			&it.AuthorID, &it.ViewCount, &it.LikeCount, &it.CommentCount, &it.ShareCount,
			&tags, &it.CarMake, &it.CarModel, &it.CarYear, &it.CarDisplayName,
			&it.IsTrending, &it.IsFeatured, &it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		it.ContentType = domain.ContentNews
		it.Tags = tags
		items = append(items, it)
	}

	return items, rows.Err()
}
