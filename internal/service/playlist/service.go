package playlist

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/pkg/guard"
	"streamhub/internal/repository"
	"streamhub/internal/service/storage"
)

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input domain.CreatePlaylistInput, thumbnail *storage.LocalFile) (*domain.Playlist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Playlist], error)
	Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdatePlaylistInput, thumbnail *storage.LocalFile) (*domain.Playlist, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	AddVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*domain.Playlist, error)
}

type service struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	assets       storage.Service
}

func NewService(playlistRepo repository.PlaylistRepository, videoRepo repository.VideoRepository, assets storage.Service) Service {
	return &service{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		assets:       assets,
	}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input domain.CreatePlaylistInput, thumbnail *storage.LocalFile) (*domain.Playlist, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", domain.ErrValidation)
	}

	exists, err := s.playlistRepo.ExistsByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: playlist with this name already exists", domain.ErrValidation)
	}

	var thumbnailURL *string
	if thumbnail != nil {
		upload, err := s.assets.Commit(ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage)
		if err != nil {
			return nil, err
		}
		thumbnailURL = &upload.URL
	}

	playlist := &domain.Playlist{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		ThumbnailURL: thumbnailURL,
	}

	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		if thumbnailURL != nil {
			s.release(ctx, *thumbnailURL)
		}
		return nil, err
	}

	return playlist, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist not found", domain.ErrNotFound)
	}

	videos, err := s.playlistRepo.ListVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	playlist.Videos = videos
	return playlist, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Playlist], error) {
	params.Validate()

	playlists, total, err := s.playlistRepo.ListByOwner(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Playlist]{}, err
	}
	if len(playlists) == 0 {
		return domain.PaginatedResponse[domain.Playlist]{}, fmt.Errorf("%w: no playlists found for this user", domain.ErrNotFound)
	}

	return domain.NewPaginatedResponse(playlists, params.Page, params.PageSize, total), nil
}

// Update replaces the thumbnail new-first, releasing the old reference only
// after the new one is persisted.
func (s *service) Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdatePlaylistInput, thumbnail *storage.LocalFile) (*domain.Playlist, error) {
	if input.Name == nil && input.Description == nil && thumbnail == nil {
		return nil, fmt.Errorf("%w: at least one of name, description or thumbnail must be provided", domain.ErrValidation)
	}

	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, playlist.OwnerID, false); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: playlist name cannot be empty", domain.ErrValidation)
		}
		playlist.Name = name
	}
	if input.Description != nil {
		playlist.Description = strings.TrimSpace(*input.Description)
	}

	// Validation runs before the new thumbnail is committed so a bad field
	// never strands a freshly uploaded asset.
	var oldThumbnail *string
	if thumbnail != nil {
		upload, err := s.assets.Commit(ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage)
		if err != nil {
			return nil, err
		}
		oldThumbnail = playlist.ThumbnailURL
		playlist.ThumbnailURL = &upload.URL
	}

	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		if thumbnail != nil {
			s.release(ctx, *playlist.ThumbnailURL)
		}
		return nil, err
	}

	if oldThumbnail != nil && *oldThumbnail != "" {
		s.release(ctx, *oldThumbnail)
	}

	return playlist, nil
}

func (s *service) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if actor == nil {
		return fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}

	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist == nil {
		return fmt.Errorf("%w: playlist not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actor.ID, playlist.OwnerID, actor.IsAdmin); err != nil {
		return err
	}

	if err := s.playlistRepo.Delete(ctx, id); err != nil {
		return err
	}

	if playlist.ThumbnailURL != nil && *playlist.ThumbnailURL != "" {
		s.release(ctx, *playlist.ThumbnailURL)
	}

	return nil
}

func (s *service) AddVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, playlist.OwnerID, false); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video not found", domain.ErrNotFound)
	}

	added, err := s.playlistRepo.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, fmt.Errorf("%w: video already exists in the playlist", domain.ErrValidation)
	}

	return s.GetByID(ctx, playlistID)
}

func (s *service) RemoveVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, fmt.Errorf("%w: playlist not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, playlist.OwnerID, false); err != nil {
		return nil, err
	}

	removed, err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, fmt.Errorf("%w: video does not exist in the playlist", domain.ErrValidation)
	}

	return s.GetByID(ctx, playlistID)
}

func (s *service) release(ctx context.Context, remoteURL string) {
	if err := s.assets.Release(ctx, remoteURL); err != nil {
		log.Printf("Warning: failed to release remote asset %s: %v", remoteURL, err)
	}
}
