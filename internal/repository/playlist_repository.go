package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"streamhub/internal/domain"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
	Update(ctx context.Context, playlist *domain.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Playlist, int64, error)
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	ListVideos(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error)
}

type playlistRepository struct {
	db *sqlx.DB
}

func NewPlaylistRepository(db *sqlx.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (playlist_id, owner_id, name, description, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		playlist.ID, playlist.OwnerID, playlist.Name, playlist.Description, playlist.ThumbnailURL,
	).Scan(&playlist.CreatedAt, &playlist.UpdatedAt)
}

func (r *playlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	query := `SELECT * FROM playlists WHERE playlist_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &playlist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM playlists
			WHERE owner_id = $1 AND LOWER(name) = LOWER($2) AND deleted_at IS NULL
		)`
	err := r.db.GetContext(ctx, &exists, query, ownerID, name)
	return exists, err
}

func (r *playlistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		UPDATE playlists
		SET name = $2, description = $3, thumbnail_url = $4, updated_at = NOW()
		WHERE playlist_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		playlist.ID, playlist.Name, playlist.Description, playlist.ThumbnailURL,
	).Scan(&playlist.UpdatedAt)
}

func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE playlists SET deleted_at = NOW() WHERE playlist_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Playlist, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM playlists WHERE owner_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, ownerID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM playlists
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, playlist_id DESC
		LIMIT $2 OFFSET $3`

	var playlists []domain.Playlist
	err := r.db.SelectContext(ctx, &playlists, query, ownerID, params.PageSize, params.Offset())
	return playlists, total, err
}

// AddVideo reports false when the video is already in the playlist; the
// unique constraint makes concurrent duplicate adds collapse into one row.
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_videos WHERE playlist_id = $1))
		ON CONFLICT (playlist_id, video_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, playlistID, videoID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	query := `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`

	res, err := r.db.ExecContext(ctx, query, playlistID, videoID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *playlistRepository) ListVideos(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error) {
	query := `
		SELECT v.*
		FROM playlist_videos pv
		INNER JOIN videos v ON v.video_id = pv.video_id AND v.deleted_at IS NULL
		WHERE pv.playlist_id = $1
		ORDER BY pv.position ASC`

	var videos []domain.Video
	err := r.db.SelectContext(ctx, &videos, query, playlistID)
	return videos, err
}
