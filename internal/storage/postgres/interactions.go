package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// InteractionStore persists per-viewer interaction state: reactions,
// bookmarks and seen records, all keyed by (viewer, content, type).
type InteractionStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewInteractionStore(db *sqlx.DB) *InteractionStore {
	return &InteractionStore{db: db, tm: NewTransactionManager(db)}
}

func (s *InteractionStore) GetReaction(ctx context.Context, contentID string, contentType domain.ContentType, viewerID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(
			SELECT 1 FROM reactions
			WHERE content_id = $1 AND content_type = $2 AND viewer_id = $3
		)`,
		contentID, contentType, viewerID,
	)
	return exists, err
}

func (s *InteractionStore) GetBookmark(ctx context.Context, contentID string, contentType domain.ContentType, viewerID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(
			SELECT 1 FROM bookmarks
			WHERE content_id = $1 AND content_type = $2 AND viewer_id = $3
		)`,
		contentID, contentType, viewerID,
	)
	return exists, err
}

// ToggleBookmark removes the bookmark if one exists, otherwise creates
// it, inside one transaction so no intermediate state is observable.
// It returns the new state. Concurrent toggles of the same triple can
// still double-flip; that race is accepted upstream.
func (s *InteractionStore) ToggleBookmark(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) (bool, error) {
	var bookmarked bool
	err := s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		var id int64
		err := sqlx.GetContext(txCtx, ex, &id,
			`DELETE FROM bookmarks
			 WHERE viewer_id = $1 AND content_id = $2 AND content_type = $3
			 RETURNING id`,
			viewerID, contentID, contentType,
		)
		if err == nil {
			bookmarked = false
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		_, err = ex.ExecContext(txCtx,
			`INSERT INTO bookmarks (viewer_id, content_id, content_type)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (viewer_id, content_id, content_type) DO NOTHING`,
			viewerID, contentID, contentType,
		)
		if err != nil {
			return err
		}
		bookmarked = true
		return nil
	})
	return bookmarked, err
}

func (s *InteractionStore) MarkSeen(ctx context.Context, viewerID, contentID string, contentType domain.ContentType) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO seen_items (viewer_id, content_id, content_type, seen_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (viewer_id, content_id, content_type) DO UPDATE SET seen_at = NOW()`,
		viewerID, contentID, contentType,
	)
	return err
}
