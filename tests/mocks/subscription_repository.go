package mocks

import (
	"context"
	"streamhub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*domain.SubscribeResult, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscribeResult), args.Error(1)
}

func (m *SubscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID, params domain.PaginationParams) ([]domain.Subscriber, int64, error) {
	args := m.Called(ctx, channelID, params)
	return args.Get(0).([]domain.Subscriber), args.Get(1).(int64), args.Error(2)
}

func (m *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, params domain.PaginationParams) ([]domain.SubscribedChannel, int64, error) {
	args := m.Called(ctx, subscriberID, params)
	return args.Get(0).([]domain.SubscribedChannel), args.Get(1).(int64), args.Error(2)
}
