package mocks

import (
	"context"
	"streamhub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PlaylistRepository struct {
	mock.Mock
}

func (m *PlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *PlaylistRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *PlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *PlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Playlist, int64, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).([]domain.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *PlaylistRepository) ListVideos(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}
