package tweet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/pkg/guard"
	"streamhub/internal/repository"
)

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input domain.CreateTweetInput) (*domain.Tweet, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdateTweetInput) (*domain.Tweet, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Tweet], error)
}

type service struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
}

func NewService(tweetRepo repository.TweetRepository, userRepo repository.UserRepository) Service {
	return &service{tweetRepo: tweetRepo, userRepo: userRepo}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input domain.CreateTweetInput) (*domain.Tweet, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: you must be logged in to tweet", domain.ErrUnauthenticated)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: tweet content is required", domain.ErrValidation)
	}

	tweet := &domain.Tweet{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Content: strings.TrimSpace(input.Content),
	}

	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *service) Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdateTweetInput) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, fmt.Errorf("%w: tweet not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, tweet.OwnerID, false); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: tweet content cannot be empty", domain.ErrValidation)
	}

	tweet.Content = strings.TrimSpace(input.Content)
	if err := s.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *service) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if actor == nil {
		return fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}

	tweet, err := s.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tweet == nil {
		return fmt.Errorf("%w: tweet not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actor.ID, tweet.OwnerID, actor.IsAdmin); err != nil {
		return err
	}

	return s.tweetRepo.Delete(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Tweet], error) {
	params.Validate()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.PaginatedResponse[domain.Tweet]{}, err
	}
	if user == nil {
		return domain.PaginatedResponse[domain.Tweet]{}, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}

	tweets, total, err := s.tweetRepo.ListByOwner(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Tweet]{}, err
	}
	if len(tweets) == 0 {
		return domain.PaginatedResponse[domain.Tweet]{}, fmt.Errorf("%w: no tweets found for this user", domain.ErrNotFound)
	}

	return domain.NewPaginatedResponse(tweets, params.Page, params.PageSize, total), nil
}
