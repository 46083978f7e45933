package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"streamhub/internal/domain"
)

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.VideoListFilter, sort domain.SortParams, params domain.PaginationParams) ([]domain.Video, int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO videos (video_id, owner_id, title, description, video_url, thumbnail_url, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING views, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		video.ID, video.OwnerID, video.Title, video.Description,
		video.VideoURL, video.ThumbnailURL, video.Duration, video.IsPublished,
	).Scan(&video.Views, &video.CreatedAt, &video.UpdatedAt)
}

func (r *videoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var video domain.Video
	query := `SELECT * FROM videos WHERE video_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &video, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) GetByIDWithOwner(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	query := `
		SELECT
			v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
			v.duration, v.views, v.is_published, v.created_at, v.updated_at,
			u.id, u.username, u.avatar_url
		FROM videos v
		INNER JOIN users u ON u.id = v.owner_id
		WHERE v.video_id = $1 AND v.deleted_at IS NULL`

	var video domain.Video
	var owner domain.UserSummary
	err := r.db.QueryRowxContext(ctx, query, id).Scan(
		&video.ID, &video.OwnerID, &video.Title, &video.Description, &video.VideoURL, &video.ThumbnailURL,
		&video.Duration, &video.Views, &video.IsPublished, &video.CreatedAt, &video.UpdatedAt,
		&owner.ID, &owner.Username, &owner.AvatarURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	video.Owner = &owner
	return &video, nil
}

func (r *videoRepository) Update(ctx context.Context, video *domain.Video) error {
	query := `
		UPDATE videos
		SET title = $2, description = $3, thumbnail_url = $4, is_published = $5, updated_at = NOW()
		WHERE video_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		video.ID, video.Title, video.Description, video.ThumbnailURL, video.IsPublished,
	).Scan(&video.UpdatedAt)
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE videos SET deleted_at = NOW() WHERE video_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// List pages the feed. sort must already be validated against
// domain.VideoSortFields; video_id is appended as a stable tie-break so equal
// sort keys paginate deterministically.
func (r *videoRepository) List(ctx context.Context, filter domain.VideoListFilter, sort domain.SortParams, params domain.PaginationParams) ([]domain.Video, int64, error) {
	params.Validate()

	where := "deleted_at IS NULL"
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		where += fmt.Sprintf(" AND owner_id = $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM videos WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM videos WHERE %s ORDER BY %s %s, video_id DESC LIMIT $%d OFFSET $%d",
		where, sort.SortBy, sort.SortOrder, len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, params.Offset())

	var videos []domain.Video
	err := r.db.SelectContext(ctx, &videos, query, args...)
	return videos, total, err
}

func (r *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE videos SET views = views + 1 WHERE video_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *videoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM videos WHERE owner_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &total, query, ownerID)
	return total, err
}

func (r *videoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &total, query, ownerID)
	return total, err
}
