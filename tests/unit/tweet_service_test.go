package unit_test

import (
	"context"
	"testing"

	"streamhub/internal/domain"
	"streamhub/internal/service/tweet"
	"streamhub/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTweetService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		tweetRepo := new(mocks.TweetRepository)
		userRepo := new(mocks.UserRepository)
		svc := tweet.NewService(tweetRepo, userRepo)

		tweetRepo.On("Create", ctx, mock.MatchedBy(func(tw *domain.Tweet) bool {
			return tw.OwnerID == ownerID && tw.Content == "Hello"
		})).Return(nil).Once()

		tw, err := svc.Create(ctx, ownerID, domain.CreateTweetInput{Content: "  Hello  "})

		assert.NoError(t, err)
		assert.Equal(t, "Hello", tw.Content)
		tweetRepo.AssertExpectations(t)
	})

	t.Run("Blank Content", func(t *testing.T) {
		tweetRepo := new(mocks.TweetRepository)
		userRepo := new(mocks.UserRepository)
		svc := tweet.NewService(tweetRepo, userRepo)

		tw, err := svc.Create(ctx, ownerID, domain.CreateTweetInput{Content: ""})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, tw)
	})
}

func TestTweetService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tweetID := uuid.New()

	existing := func() *domain.Tweet {
		return &domain.Tweet{ID: tweetID, OwnerID: ownerID}
	}

	t.Run("Owner", func(t *testing.T) {
		tweetRepo := new(mocks.TweetRepository)
		userRepo := new(mocks.UserRepository)
		svc := tweet.NewService(tweetRepo, userRepo)

		tweetRepo.On("GetByID", ctx, tweetID).Return(existing(), nil).Once()
		tweetRepo.On("Delete", ctx, tweetID).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: ownerID}, tweetID)

		assert.NoError(t, err)
	})

	t.Run("Forbidden For Stranger", func(t *testing.T) {
		tweetRepo := new(mocks.TweetRepository)
		userRepo := new(mocks.UserRepository)
		svc := tweet.NewService(tweetRepo, userRepo)

		tweetRepo.On("GetByID", ctx, tweetID).Return(existing(), nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: uuid.New()}, tweetID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		tweetRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTweetService_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	params := domain.DefaultPagination()

	t.Run("Unknown User", func(t *testing.T) {
		tweetRepo := new(mocks.TweetRepository)
		userRepo := new(mocks.UserRepository)
		svc := tweet.NewService(tweetRepo, userRepo)

		userRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()

		_, err := svc.ListByUser(ctx, userID, params)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		tweetRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty Is Not Found", func(t *testing.T) {
		tweetRepo := new(mocks.TweetRepository)
		userRepo := new(mocks.UserRepository)
		svc := tweet.NewService(tweetRepo, userRepo)

		userRepo.On("GetByID", ctx, userID).
			Return(&domain.User{ID: userID}, nil).Once()
		tweetRepo.On("ListByOwner", ctx, userID, params).
			Return([]domain.Tweet{}, int64(0), nil).Once()

		_, err := svc.ListByUser(ctx, userID, params)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
