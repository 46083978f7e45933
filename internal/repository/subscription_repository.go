package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"streamhub/internal/domain"
)

type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*domain.SubscribeResult, error)
	CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error)
	ListSubscribers(ctx context.Context, channelID uuid.UUID, params domain.PaginationParams) ([]domain.Subscriber, int64, error)
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, params domain.PaginationParams) ([]domain.SubscribedChannel, int64, error)
}

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Toggle is the same conditional-write pattern as the like toggle: the unique
// (subscriber_id, channel_id) index serializes concurrent identical calls.
func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*domain.SubscribeResult, error) {
	insertQuery := `
		INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
		RETURNING subscription_id`

	var subscriptionID uuid.UUID
	err := r.db.QueryRowxContext(ctx, insertQuery, uuid.New(), subscriberID, channelID).Scan(&subscriptionID)
	if err == nil {
		return &domain.SubscribeResult{Subscribed: true, Subscription: &subscriptionID}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	deleteQuery := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`
	if _, err := r.db.ExecContext(ctx, deleteQuery, subscriberID, channelID); err != nil {
		return nil, err
	}

	return &domain.SubscribeResult{Subscribed: false}, nil
}

func (r *subscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`
	err := r.db.GetContext(ctx, &total, query, channelID)
	return total, err
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID, params domain.PaginationParams) ([]domain.Subscriber, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, channelID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			s.subscription_id, s.created_at,
			u.id, u.username, u.avatar_url
		FROM subscriptions s
		INNER JOIN users u ON u.id = s.subscriber_id AND u.deleted_at IS NULL
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC, s.subscription_id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryxContext(ctx, query, channelID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subscribers []domain.Subscriber
	for rows.Next() {
		var sub domain.Subscriber
		err := rows.Scan(
			&sub.SubscriptionID, &sub.SubscribedAt,
			&sub.User.ID, &sub.User.Username, &sub.User.AvatarURL,
		)
		if err != nil {
			return nil, 0, err
		}
		subscribers = append(subscribers, sub)
	}

	return subscribers, total, rows.Err()
}

func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, params domain.PaginationParams) ([]domain.SubscribedChannel, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, subscriberID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			s.subscription_id, s.created_at,
			u.id, u.username, u.avatar_url
		FROM subscriptions s
		INNER JOIN users u ON u.id = s.channel_id AND u.deleted_at IS NULL
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC, s.subscription_id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryxContext(ctx, query, subscriberID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var channels []domain.SubscribedChannel
	for rows.Next() {
		var ch domain.SubscribedChannel
		err := rows.Scan(
			&ch.SubscriptionID, &ch.SubscribedAt,
			&ch.Channel.ID, &ch.Channel.Username, &ch.Channel.AvatarURL,
		)
		if err != nil {
			return nil, 0, err
		}
		channels = append(channels, ch)
	}

	return channels, total, rows.Err()
}
