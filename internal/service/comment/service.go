package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"streamhub/internal/domain"
	"streamhub/internal/pkg/guard"
	"streamhub/internal/repository"
)

type Service interface {
	Create(ctx context.Context, videoID, ownerID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	ListByVideo(ctx context.Context, videoID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error)
}

type service struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	redis       *redis.Client
}

func NewService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository, redis *redis.Client) Service {
	return &service{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		redis:       redis,
	}
}

func (s *service) Create(ctx context.Context, videoID, ownerID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: you must be logged in to comment", domain.ErrUnauthenticated)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: comment content is required", domain.ErrValidation)
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video not found", domain.ErrNotFound)
	}

	comment := &domain.Comment{
		ID:      uuid.New(),
		VideoID: videoID,
		OwnerID: ownerID,
		Content: strings.TrimSpace(input.Content),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, videoID)
	return comment, nil
}

func (s *service) Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("%w: comment not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, comment.OwnerID, false); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: comment content cannot be empty", domain.ErrValidation)
	}

	comment.Content = strings.TrimSpace(input.Content)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, comment.VideoID)
	return comment, nil
}

func (s *service) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if actor == nil {
		return fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return fmt.Errorf("%w: comment not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actor.ID, comment.OwnerID, actor.IsAdmin); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx, comment.VideoID)
	return nil
}

// ListByVideo serves a cached page when Redis has one. An empty page is a
// not-found per the API convention, so stale cache never masks a 404 flip.
func (s *service) ListByVideo(ctx context.Context, videoID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error) {
	params.Validate()
	cacheKey := fmt.Sprintf("comments:%s:page:%d:size:%d", videoID, params.Page, params.PageSize)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result domain.PaginatedResponse[domain.Comment]
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	comments, total, err := s.commentRepo.ListByVideo(ctx, videoID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Comment]{}, err
	}
	if len(comments) == 0 {
		return domain.PaginatedResponse[domain.Comment]{}, fmt.Errorf("%w: no comments found for this video", domain.ErrNotFound)
	}

	result := domain.NewPaginatedResponse(comments, params.Page, params.PageSize, total)

	if s.redis != nil {
		if resultJSON, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, cacheKey, resultJSON, 5*time.Minute).Err()
		}
	}

	return result, nil
}

func (s *service) invalidateCache(ctx context.Context, videoID uuid.UUID) {
	if s.redis == nil {
		return
	}
	pattern := fmt.Sprintf("comments:%s:*", videoID)
	keys, _ := s.redis.Keys(ctx, pattern).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}
