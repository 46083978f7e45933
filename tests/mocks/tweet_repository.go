package mocks

import (
	"context"
	"streamhub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type TweetRepository struct {
	mock.Mock
}

func (m *TweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *TweetRepository) Update(ctx context.Context, tweet *domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *TweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Tweet, int64, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).([]domain.Tweet), args.Get(1).(int64), args.Error(2)
}
