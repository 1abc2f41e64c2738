package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// GetComments pages through visible comments for one piece of content,
// newest first. Author names are denormalized onto the comment row.
func (s *CommentStore) GetComments(ctx context.Context, contentID string, contentType domain.ContentType, page, pageSize int) ([]domain.Comment, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := `
		SELECT id, content_id, author_id, author_name, body, created_at
		FROM comments
		WHERE content_id = $1 AND content_type = $2 AND is_hidden = FALSE
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.QueryContext(ctx, query, contentID, contentType, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ContentID, &c.AuthorID, &c.AuthorName, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
