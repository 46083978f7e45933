package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"streamhub/internal/domain"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	Update(ctx context.Context, tweet *domain.Tweet) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Tweet, int64, error)
}

type tweetRepository struct {
	db *sqlx.DB
}

func NewTweetRepository(db *sqlx.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	query := `
		INSERT INTO tweets (tweet_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		tweet.ID, tweet.OwnerID, tweet.Content,
	).Scan(&tweet.CreatedAt, &tweet.UpdatedAt)
}

func (r *tweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	var tweet domain.Tweet
	query := `SELECT * FROM tweets WHERE tweet_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &tweet, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *domain.Tweet) error {
	query := `
		UPDATE tweets
		SET content = $2, updated_at = NOW()
		WHERE tweet_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		tweet.ID, tweet.Content,
	).Scan(&tweet.UpdatedAt)
}

func (r *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tweets SET deleted_at = NOW() WHERE tweet_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Tweet, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM tweets WHERE owner_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, ownerID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM tweets
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, tweet_id DESC
		LIMIT $2 OFFSET $3`

	var tweets []domain.Tweet
	err := r.db.SelectContext(ctx, &tweets, query, ownerID, params.PageSize, params.Offset())
	return tweets, total, err
}
