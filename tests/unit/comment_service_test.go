package unit_test

import (
	"context"
	"testing"

	"streamhub/internal/domain"
	"streamhub/internal/service/comment"
	"streamhub/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.New()
	userID := uuid.New()
	input := domain.CreateCommentInput{Content: "Nice video"}

	t.Run("Success", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		videoRepo.On("GetByID", ctx, videoID).
			Return(&domain.Video{ID: videoID}, nil).Once()
		commentRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.VideoID == videoID && c.OwnerID == userID && c.Content == input.Content
		})).Return(nil).Once()

		c, err := svc.Create(ctx, videoID, userID, input)

		assert.NoError(t, err)
		assert.Equal(t, input.Content, c.Content)
		commentRepo.AssertExpectations(t)
	})

	t.Run("Video Missing", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		videoRepo.On("GetByID", ctx, videoID).Return(nil, nil).Once()

		c, err := svc.Create(ctx, videoID, userID, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, c)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Blank Content", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		c, err := svc.Create(ctx, videoID, userID, domain.CreateCommentInput{Content: "   "})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, c)
	})
}

func TestCommentService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	commentID := uuid.New()

	existing := func() *domain.Comment {
		return &domain.Comment{ID: commentID, OwnerID: userID, Content: "Original"}
	}

	t.Run("Success", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		commentRepo.On("GetByID", ctx, commentID).Return(existing(), nil).Once()
		commentRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ID == commentID && c.Content == "Updated"
		})).Return(nil).Once()

		c, err := svc.Update(ctx, userID, commentID, domain.UpdateCommentInput{Content: "Updated"})

		assert.NoError(t, err)
		assert.Equal(t, "Updated", c.Content)
		commentRepo.AssertExpectations(t)
	})

	t.Run("Forbidden For Stranger", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		commentRepo.On("GetByID", ctx, commentID).Return(existing(), nil).Once()

		c, err := svc.Update(ctx, uuid.New(), commentID, domain.UpdateCommentInput{Content: "Updated"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, c)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	commentID := uuid.New()

	existing := func() *domain.Comment {
		return &domain.Comment{ID: commentID, OwnerID: userID}
	}

	t.Run("Owner", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		commentRepo.On("GetByID", ctx, commentID).Return(existing(), nil).Once()
		commentRepo.On("Delete", ctx, commentID).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: userID}, commentID)

		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("Admin Override", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		commentRepo.On("GetByID", ctx, commentID).Return(existing(), nil).Once()
		commentRepo.On("Delete", ctx, commentID).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: uuid.New(), IsAdmin: true}, commentID)

		assert.NoError(t, err)
	})

	t.Run("Forbidden For Stranger", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		commentRepo.On("GetByID", ctx, commentID).Return(existing(), nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: uuid.New()}, commentID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCommentService_ListByVideo(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.New()
	params := domain.DefaultPagination()

	t.Run("Success", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		comments := []domain.Comment{{ID: uuid.New(), VideoID: videoID, Content: "First"}}
		commentRepo.On("ListByVideo", ctx, videoID, params).
			Return(comments, int64(1), nil).Once()

		result, err := svc.ListByVideo(ctx, videoID, params)

		assert.NoError(t, err)
		assert.Len(t, result.Data, 1)
	})

	t.Run("Empty Is Not Found", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		videoRepo := new(mocks.VideoRepository)
		svc := comment.NewService(commentRepo, videoRepo, nil)

		commentRepo.On("ListByVideo", ctx, videoID, params).
			Return([]domain.Comment{}, int64(0), nil).Once()

		_, err := svc.ListByVideo(ctx, videoID, params)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
