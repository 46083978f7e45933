package like

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/repository"
)

type Service interface {
	Toggle(ctx context.Context, userID, targetID uuid.UUID, targetType domain.LikeTarget) (*domain.ToggleResult, error)
	ListLikedVideos(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.LikedVideo], error)
}

type service struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
}

func NewService(likeRepo repository.LikeRepository, videoRepo repository.VideoRepository, commentRepo repository.CommentRepository, tweetRepo repository.TweetRepository) Service {
	return &service{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// Toggle verifies the target exists, then delegates to the repository's
// atomic conditional write. The existence check runs first so a like can
// never point at a missing entity.
func (s *service) Toggle(ctx context.Context, userID, targetID uuid.UUID, targetType domain.LikeTarget) (*domain.ToggleResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: you must be logged in to like", domain.ErrUnauthenticated)
	}
	if !targetType.IsValid() {
		return nil, fmt.Errorf("%w: unknown like target %q", domain.ErrValidation, targetType)
	}

	exists, err := s.targetExists(ctx, targetID, targetType)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s not found", domain.ErrNotFound, targetType)
	}

	return s.likeRepo.Toggle(ctx, userID, targetID, targetType)
}

func (s *service) ListLikedVideos(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.LikedVideo], error) {
	if userID == uuid.Nil {
		return domain.PaginatedResponse[domain.LikedVideo]{}, fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}
	params.Validate()

	liked, total, err := s.likeRepo.ListLikedVideos(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.LikedVideo]{}, err
	}
	if len(liked) == 0 {
		return domain.PaginatedResponse[domain.LikedVideo]{}, fmt.Errorf("%w: no liked videos found", domain.ErrNotFound)
	}

	return domain.NewPaginatedResponse(liked, params.Page, params.PageSize, total), nil
}

func (s *service) targetExists(ctx context.Context, targetID uuid.UUID, targetType domain.LikeTarget) (bool, error) {
	switch targetType {
	case domain.LikeTargetVideo:
		video, err := s.videoRepo.GetByID(ctx, targetID)
		return video != nil, err
	case domain.LikeTargetComment:
		comment, err := s.commentRepo.GetByID(ctx, targetID)
		return comment != nil, err
	case domain.LikeTargetTweet:
		tweet, err := s.tweetRepo.GetByID(ctx, targetID)
		return tweet != nil, err
	default:
		return false, nil
	}
}
