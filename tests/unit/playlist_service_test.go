package unit_test

import (
	"context"
	"testing"

	"streamhub/internal/domain"
	"streamhub/internal/service/playlist"
	"streamhub/internal/service/storage"
	"streamhub/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPlaylistService() (playlist.Service, *mocks.PlaylistRepository, *mocks.VideoRepository, *mocks.StorageService) {
	playlistRepo := new(mocks.PlaylistRepository)
	videoRepo := new(mocks.VideoRepository)
	storageSvc := new(mocks.StorageService)
	return playlist.NewService(playlistRepo, videoRepo, storageSvc), playlistRepo, videoRepo, storageSvc
}

func TestPlaylistService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	input := domain.CreatePlaylistInput{Name: "Watch later", Description: "Queue"}

	t.Run("Success", func(t *testing.T) {
		svc, playlistRepo, _, _ := newPlaylistService()

		playlistRepo.On("ExistsByOwnerAndName", ctx, ownerID, input.Name).
			Return(false, nil).Once()
		playlistRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Playlist) bool {
			return p.OwnerID == ownerID && p.Name == input.Name
		})).Return(nil).Once()

		p, err := svc.Create(ctx, ownerID, input, nil)

		assert.NoError(t, err)
		assert.Equal(t, input.Name, p.Name)
		playlistRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		svc, playlistRepo, _, _ := newPlaylistService()

		playlistRepo.On("ExistsByOwnerAndName", ctx, ownerID, input.Name).
			Return(true, nil).Once()

		p, err := svc.Create(ctx, ownerID, input, nil)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, p)
		playlistRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPlaylistService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()

	t.Run("Rejects Empty Name Before Thumbnail Commit", func(t *testing.T) {
		svc, playlistRepo, _, storageSvc := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).
			Return(&domain.Playlist{ID: playlistID, OwnerID: ownerID, Name: "Watch later"}, nil).Once()

		name := "   "
		thumbnail := &storage.LocalFile{Path: "/tmp/new.png", MimeType: "image/png"}
		p, err := svc.Update(ctx, ownerID, playlistID, domain.UpdatePlaylistInput{Name: &name}, thumbnail)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, p)
		storageSvc.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlaylistService_AddVideo(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	owned := func() *domain.Playlist {
		return &domain.Playlist{ID: playlistID, OwnerID: ownerID, Name: "Mix"}
	}

	t.Run("Success", func(t *testing.T) {
		svc, playlistRepo, videoRepo, _ := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).Return(owned(), nil).Twice()
		videoRepo.On("GetByID", ctx, videoID).
			Return(&domain.Video{ID: videoID}, nil).Once()
		playlistRepo.On("AddVideo", ctx, playlistID, videoID).Return(true, nil).Once()
		playlistRepo.On("ListVideos", ctx, playlistID).
			Return([]domain.Video{{ID: videoID}}, nil).Once()

		p, err := svc.AddVideo(ctx, ownerID, playlistID, videoID)

		assert.NoError(t, err)
		assert.Len(t, p.Videos, 1)
	})

	t.Run("Already In Playlist", func(t *testing.T) {
		svc, playlistRepo, videoRepo, _ := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).Return(owned(), nil).Once()
		videoRepo.On("GetByID", ctx, videoID).
			Return(&domain.Video{ID: videoID}, nil).Once()
		playlistRepo.On("AddVideo", ctx, playlistID, videoID).Return(false, nil).Once()

		p, err := svc.AddVideo(ctx, ownerID, playlistID, videoID)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, p)
	})

	t.Run("Forbidden For Stranger", func(t *testing.T) {
		svc, playlistRepo, _, _ := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).Return(owned(), nil).Once()

		p, err := svc.AddVideo(ctx, uuid.New(), playlistID, videoID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, p)
		playlistRepo.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlaylistService_RemoveVideo(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	owned := func() *domain.Playlist {
		return &domain.Playlist{ID: playlistID, OwnerID: ownerID, Name: "Mix"}
	}

	t.Run("Not In Playlist", func(t *testing.T) {
		svc, playlistRepo, _, _ := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).Return(owned(), nil).Once()
		playlistRepo.On("RemoveVideo", ctx, playlistID, videoID).Return(false, nil).Once()

		p, err := svc.RemoveVideo(ctx, ownerID, playlistID, videoID)

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, p)
	})
}

func TestPlaylistService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()
	thumbURL := "http://blob/media/p.png"

	t.Run("Releases Thumbnail After Record Delete", func(t *testing.T) {
		svc, playlistRepo, _, storageSvc := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).
			Return(&domain.Playlist{ID: playlistID, OwnerID: ownerID, ThumbnailURL: &thumbURL}, nil).Once()
		playlistRepo.On("Delete", ctx, playlistID).Return(nil).Once()
		storageSvc.On("Release", ctx, thumbURL).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: ownerID}, playlistID)

		assert.NoError(t, err)
		storageSvc.AssertExpectations(t)
	})

	t.Run("Admin Override", func(t *testing.T) {
		svc, playlistRepo, _, _ := newPlaylistService()

		playlistRepo.On("GetByID", ctx, playlistID).
			Return(&domain.Playlist{ID: playlistID, OwnerID: ownerID}, nil).Once()
		playlistRepo.On("Delete", ctx, playlistID).Return(nil).Once()

		err := svc.Delete(ctx, &domain.User{ID: uuid.New(), IsAdmin: true}, playlistID)

		assert.NoError(t, err)
	})
}

func TestPlaylistService_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	params := domain.DefaultPagination()

	t.Run("Empty Is Not Found", func(t *testing.T) {
		svc, playlistRepo, _, _ := newPlaylistService()

		playlistRepo.On("ListByOwner", ctx, userID, params).
			Return([]domain.Playlist{}, int64(0), nil).Once()

		_, err := svc.ListByUser(ctx, userID, params)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
