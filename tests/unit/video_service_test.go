package unit_test

import (
	"context"
	"errors"
	"testing"

	"streamhub/internal/domain"
	"streamhub/internal/service/storage"
	"streamhub/internal/service/video"
	"streamhub/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVideoService_Publish(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	input := domain.PublishVideoInput{
		Title:       "My first video",
		Description: "A description",
		Duration:    42.5,
	}
	videoFile := storage.LocalFile{Path: "/tmp/video.mp4", MimeType: "video/mp4"}
	thumbnail := storage.LocalFile{Path: "/tmp/thumb.png", MimeType: "image/png"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockStorage.On("Commit", ctx, videoFile.Path, videoFile.MimeType, storage.KindVideo).
			Return(&storage.UploadResult{URL: "http://blob/media/v.mp4"}, nil).Once()
		mockStorage.On("Commit", ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage).
			Return(&storage.UploadResult{URL: "http://blob/media/t.png"}, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(v *domain.Video) bool {
			return v.OwnerID == ownerID &&
				v.Title == input.Title &&
				v.VideoURL == "http://blob/media/v.mp4" &&
				v.ThumbnailURL == "http://blob/media/t.png" &&
				v.IsPublished
		})).Return(nil).Once()

		v, err := svc.Publish(ctx, ownerID, input, videoFile, thumbnail)

		assert.NoError(t, err)
		assert.NotNil(t, v)
		assert.Equal(t, input.Duration, v.Duration)
		mockRepo.AssertExpectations(t)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Rejects Bad Mime Before Upload", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		badVideo := storage.LocalFile{Path: "/tmp/video.gif", MimeType: "image/gif"}

		v, err := svc.Publish(ctx, ownerID, input, badVideo, thumbnail)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, v)
		mockStorage.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Releases Video When Thumbnail Commit Fails", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockStorage.On("Commit", ctx, videoFile.Path, videoFile.MimeType, storage.KindVideo).
			Return(&storage.UploadResult{URL: "http://blob/media/v.mp4"}, nil).Once()
		mockStorage.On("Commit", ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage).
			Return(nil, errors.New("network down")).Once()
		mockStorage.On("Release", ctx, "http://blob/media/v.mp4").Return(nil).Once()

		v, err := svc.Publish(ctx, ownerID, input, videoFile, thumbnail)

		assert.Error(t, err)
		assert.Nil(t, v)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Releases Both Assets When Insert Fails", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockStorage.On("Commit", ctx, videoFile.Path, videoFile.MimeType, storage.KindVideo).
			Return(&storage.UploadResult{URL: "http://blob/media/v.mp4"}, nil).Once()
		mockStorage.On("Commit", ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage).
			Return(&storage.UploadResult{URL: "http://blob/media/t.png"}, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Video")).
			Return(errors.New("insert failed")).Once()
		mockStorage.On("Release", ctx, "http://blob/media/v.mp4").Return(nil).Once()
		mockStorage.On("Release", ctx, "http://blob/media/t.png").Return(nil).Once()

		v, err := svc.Publish(ctx, ownerID, input, videoFile, thumbnail)

		assert.Error(t, err)
		assert.Nil(t, v)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Requires Title", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		v, err := svc.Publish(ctx, ownerID, domain.PublishVideoInput{Duration: 10}, videoFile, thumbnail)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, v)
	})
}

func TestVideoService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	videoID := uuid.New()

	existing := func() *domain.Video {
		return &domain.Video{
			ID:           videoID,
			OwnerID:      ownerID,
			Title:        "Old title",
			ThumbnailURL: "http://blob/media/old.png",
		}
	}

	t.Run("Replaces Thumbnail New First", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		thumbnail := &storage.LocalFile{Path: "/tmp/new.png", MimeType: "image/png"}

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()
		mockStorage.On("Commit", ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage).
			Return(&storage.UploadResult{URL: "http://blob/media/new.png"}, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Video) bool {
			return v.ThumbnailURL == "http://blob/media/new.png"
		})).Return(nil).Once()
		mockStorage.On("Release", ctx, "http://blob/media/old.png").Return(nil).Once()

		v, err := svc.Update(ctx, ownerID, videoID, domain.UpdateVideoInput{}, thumbnail)

		assert.NoError(t, err)
		assert.Equal(t, "http://blob/media/new.png", v.ThumbnailURL)
		mockRepo.AssertExpectations(t)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Keeps Old Thumbnail When Persist Fails", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		thumbnail := &storage.LocalFile{Path: "/tmp/new.png", MimeType: "image/png"}

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()
		mockStorage.On("Commit", ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage).
			Return(&storage.UploadResult{URL: "http://blob/media/new.png"}, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Video")).
			Return(errors.New("update failed")).Once()
		mockStorage.On("Release", ctx, "http://blob/media/new.png").Return(nil).Once()

		v, err := svc.Update(ctx, ownerID, videoID, domain.UpdateVideoInput{}, thumbnail)

		assert.Error(t, err)
		assert.Nil(t, v)
		mockStorage.AssertNotCalled(t, "Release", ctx, "http://blob/media/old.png")
	})

	t.Run("Rejects Empty Title Before Thumbnail Commit", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		thumbnail := &storage.LocalFile{Path: "/tmp/new.png", MimeType: "image/png"}

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()

		title := "   "
		v, err := svc.Update(ctx, ownerID, videoID, domain.UpdateVideoInput{Title: &title}, thumbnail)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, v)
		mockStorage.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forbidden For Stranger", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()

		title := "New title"
		v, err := svc.Update(ctx, uuid.New(), videoID, domain.UpdateVideoInput{Title: &title}, nil)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, v)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByID", ctx, videoID).Return(nil, nil).Once()

		v, err := svc.Update(ctx, ownerID, videoID, domain.UpdateVideoInput{}, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, v)
	})
}

func TestVideoService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	videoID := uuid.New()

	existing := func() *domain.Video {
		return &domain.Video{
			ID:           videoID,
			OwnerID:      ownerID,
			VideoURL:     "http://blob/media/v.mp4",
			ThumbnailURL: "http://blob/media/t.png",
		}
	}

	t.Run("Owner Releases Both Assets", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()
		mockStorage.On("Release", ctx, "http://blob/media/v.mp4").Return(nil).Once()
		mockStorage.On("Release", ctx, "http://blob/media/t.png").Return(nil).Once()
		mockRepo.On("Delete", ctx, videoID).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: ownerID}, videoID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Admin Override", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()
		mockStorage.On("Release", ctx, mock.Anything).Return(nil).Twice()
		mockRepo.On("Delete", ctx, videoID).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: uuid.New(), IsAdmin: true}, videoID)

		assert.NoError(t, err)
	})

	t.Run("Forbidden For Stranger", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: uuid.New()}, videoID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mockStorage.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("Release Failure Keeps Record", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByID", ctx, videoID).Return(existing(), nil).Once()
		mockStorage.On("Release", ctx, "http://blob/media/v.mp4").Return(errors.New("gone wrong")).Once()
		mockStorage.On("Release", ctx, "http://blob/media/t.png").Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: ownerID}, videoID)

		assert.ErrorIs(t, err, domain.ErrDeletion)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestVideoService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Unknown Sort Field", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		sort := domain.SortParams{SortBy: "owner_id; DROP TABLE videos", SortOrder: "desc"}
		_, err := svc.List(ctx, domain.VideoListFilter{}, sort, domain.DefaultPagination())

		assert.ErrorIs(t, err, domain.ErrValidation)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty Feed Is Not An Error", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		params := domain.DefaultPagination()
		mockRepo.On("List", ctx, mock.Anything, mock.Anything, params).
			Return([]domain.Video{}, int64(0), nil).Once()

		result, err := svc.List(ctx, domain.VideoListFilter{}, domain.SortParams{}, params)

		assert.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, int64(0), result.TotalItems)
	})
}

func TestVideoService_GetByID(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.New()

	t.Run("Bumps Views", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByIDWithOwner", ctx, videoID).
			Return(&domain.Video{ID: videoID, Views: 7}, nil).Once()
		mockRepo.On("IncrementViews", ctx, videoID).Return(nil).Once()
		mockLikes.On("CountByTarget", ctx, videoID, domain.LikeTargetVideo).
			Return(int64(3), nil).Once()

		v, err := svc.GetByID(ctx, videoID)

		assert.NoError(t, err)
		assert.Equal(t, int64(8), v.Views)
		assert.Equal(t, int64(3), v.LikeCount)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockStorage := new(mocks.StorageService)
		mockLikes := new(mocks.LikeRepository)
		svc := video.NewService(mockRepo, mockLikes, mockStorage)

		mockRepo.On("GetByIDWithOwner", ctx, videoID).Return(nil, nil).Once()

		v, err := svc.GetByID(ctx, videoID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, v)
	})
}
