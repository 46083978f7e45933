package mocks

import (
	"context"
	"streamhub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Toggle(ctx context.Context, userID, targetID uuid.UUID, targetType domain.LikeTarget) (*domain.ToggleResult, error) {
	args := m.Called(ctx, userID, targetID, targetType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToggleResult), args.Error(1)
}

func (m *LikeRepository) CountByTarget(ctx context.Context, targetID uuid.UUID, targetType domain.LikeTarget) (int64, error) {
	args := m.Called(ctx, targetID, targetType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.LikedVideo, int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.LikedVideo), args.Get(1).(int64), args.Error(2)
}
