package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"streamhub/internal/domain"
)

type LikeRepository interface {
	Toggle(ctx context.Context, userID, targetID uuid.UUID, targetType domain.LikeTarget) (*domain.ToggleResult, error)
	CountByTarget(ctx context.Context, targetID uuid.UUID, targetType domain.LikeTarget) (int64, error)
	ListLikedVideos(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.LikedVideo, int64, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the (user, target, type) edge with conditional writes, never a
// read-then-branch sequence. The insert rides on the unique index: under two
// concurrent identical toggles one insert wins and the other conflicts into
// the delete branch, so at most one edge ever exists per tuple.
func (r *likeRepository) Toggle(ctx context.Context, userID, targetID uuid.UUID, targetType domain.LikeTarget) (*domain.ToggleResult, error) {
	insertQuery := `
		INSERT INTO likes (like_id, user_id, target_id, target_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, target_id, target_type) DO NOTHING
		RETURNING like_id`

	var likeID uuid.UUID
	err := r.db.QueryRowxContext(ctx, insertQuery, uuid.New(), userID, targetID, targetType).Scan(&likeID)
	if err == nil {
		return &domain.ToggleResult{Created: true, LikeID: &likeID}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	deleteQuery := `DELETE FROM likes WHERE user_id = $1 AND target_id = $2 AND target_type = $3`
	if _, err := r.db.ExecContext(ctx, deleteQuery, userID, targetID, targetType); err != nil {
		return nil, err
	}

	return &domain.ToggleResult{Created: false}, nil
}

func (r *likeRepository) CountByTarget(ctx context.Context, targetID uuid.UUID, targetType domain.LikeTarget) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM likes WHERE target_id = $1 AND target_type = $2`
	err := r.db.GetContext(ctx, &total, query, targetID, targetType)
	return total, err
}

func (r *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.LikedVideo, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM likes l
		INNER JOIN videos v ON v.video_id = l.target_id AND v.deleted_at IS NULL
		WHERE l.user_id = $1 AND l.target_type = 'video'`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			l.like_id, l.created_at AS liked_at,
			v.video_id, v.title, v.description, v.thumbnail_url, v.created_at
		FROM likes l
		INNER JOIN videos v ON v.video_id = l.target_id AND v.deleted_at IS NULL
		WHERE l.user_id = $1 AND l.target_type = 'video'
		ORDER BY l.created_at DESC, l.like_id DESC
		LIMIT $2 OFFSET $3`

	var liked []domain.LikedVideo
	err := r.db.SelectContext(ctx, &liked, query, userID, params.PageSize, params.Offset())
	return liked, total, err
}
