package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"streamhub/internal/domain"
	"streamhub/internal/repository"
)

type Service interface {
	GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*domain.ChannelStats, error)
	ListChannelVideos(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Video], error)
}

type service struct {
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	redis            *redis.Client
}

func NewService(videoRepo repository.VideoRepository, subscriptionRepo repository.SubscriptionRepository, redis *redis.Client) Service {
	return &service{
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		redis:            redis,
	}
}

func (s *service) GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*domain.ChannelStats, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%s", ownerID)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats domain.ChannelStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	totalVideos, err := s.videoRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.videoRepo.SumViewsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := s.subscriptionRepo.CountByChannel(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &domain.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, time.Minute).Err()
		}
	}

	return stats, nil
}

func (s *service) ListChannelVideos(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Video], error) {
	if ownerID == uuid.Nil {
		return domain.PaginatedResponse[domain.Video]{}, fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}
	params.Validate()

	filter := domain.VideoListFilter{OwnerID: &ownerID}
	sort := domain.SortParams{SortBy: "created_at", SortOrder: "DESC"}

	videos, total, err := s.videoRepo.List(ctx, filter, sort, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Video]{}, err
	}
	if len(videos) == 0 {
		return domain.PaginatedResponse[domain.Video]{}, fmt.Errorf("%w: no videos found for this channel", domain.ErrNotFound)
	}

	return domain.NewPaginatedResponse(videos, params.Page, params.PageSize, total), nil
}
