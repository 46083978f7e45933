package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/repository"
)

type Service interface {
	Toggle(ctx context.Context, subscriberID uuid.UUID, channelName string) (*domain.SubscribeResult, error)
	ListSubscribers(ctx context.Context, channelName string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Subscriber], error)
	ListSubscribedChannels(ctx context.Context, subscriberName string, params domain.PaginationParams) (domain.PaginatedResponse[domain.SubscribedChannel], error)
}

type service struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
}

func NewService(subscriptionRepo repository.SubscriptionRepository, userRepo repository.UserRepository) Service {
	return &service{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Toggle resolves the channel name to its owning user (case-insensitive
// exact match) and flips the (subscriber, channel) edge atomically.
func (s *service) Toggle(ctx context.Context, subscriberID uuid.UUID, channelName string) (*domain.SubscribeResult, error) {
	if subscriberID == uuid.Nil {
		return nil, fmt.Errorf("%w: you must be logged in to subscribe", domain.ErrUnauthenticated)
	}
	if channelName == "" {
		return nil, fmt.Errorf("%w: channel name is required", domain.ErrValidation)
	}

	channel, err := s.userRepo.GetByUsername(ctx, channelName)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, fmt.Errorf("%w: channel not found", domain.ErrNotFound)
	}

	if channel.ID == subscriberID {
		return nil, fmt.Errorf("%w: you cannot subscribe to your own channel", domain.ErrValidation)
	}

	return s.subscriptionRepo.Toggle(ctx, subscriberID, channel.ID)
}

func (s *service) ListSubscribers(ctx context.Context, channelName string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Subscriber], error) {
	params.Validate()

	channel, err := s.userRepo.GetByUsername(ctx, channelName)
	if err != nil {
		return domain.PaginatedResponse[domain.Subscriber]{}, err
	}
	if channel == nil {
		return domain.PaginatedResponse[domain.Subscriber]{}, fmt.Errorf("%w: channel not found", domain.ErrNotFound)
	}

	subscribers, total, err := s.subscriptionRepo.ListSubscribers(ctx, channel.ID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Subscriber]{}, err
	}
	if len(subscribers) == 0 {
		return domain.PaginatedResponse[domain.Subscriber]{}, fmt.Errorf("%w: no subscribers found for this channel", domain.ErrNotFound)
	}

	return domain.NewPaginatedResponse(subscribers, params.Page, params.PageSize, total), nil
}

func (s *service) ListSubscribedChannels(ctx context.Context, subscriberName string, params domain.PaginationParams) (domain.PaginatedResponse[domain.SubscribedChannel], error) {
	if subscriberName == "" {
		return domain.PaginatedResponse[domain.SubscribedChannel]{}, fmt.Errorf("%w: subscriber name is required", domain.ErrValidation)
	}
	params.Validate()

	subscriber, err := s.userRepo.GetByUsername(ctx, subscriberName)
	if err != nil {
		return domain.PaginatedResponse[domain.SubscribedChannel]{}, err
	}
	if subscriber == nil {
		return domain.PaginatedResponse[domain.SubscribedChannel]{}, fmt.Errorf("%w: subscriber %q not found", domain.ErrNotFound, subscriberName)
	}

	channels, total, err := s.subscriptionRepo.ListSubscribedChannels(ctx, subscriber.ID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.SubscribedChannel]{}, err
	}
	if len(channels) == 0 {
		return domain.PaginatedResponse[domain.SubscribedChannel]{}, fmt.Errorf("%w: no subscribed channels found", domain.ErrNotFound)
	}

	return domain.NewPaginatedResponse(channels, params.Page, params.PageSize, total), nil
}
