package video

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
	Publish(ctx context.Context, ownerID uuid.UUID, input domain.PublishVideoInput, videoFile, thumbnail storage.LocalFile) (*domain.Video, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	List(ctx context.Context, filter domain.VideoListFilter, sort domain.SortParams, params domain.PaginationParams) (domain.PaginatedResponse[domain.Video], error)
	Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdateVideoInput, thumbnail *storage.LocalFile) (*domain.Video, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
	TogglePublish(ctx context.Context, actorID, id uuid.UUID) (*domain.Video, error)
}

type service struct {
	videoRepo repository.VideoRepository
	likeRepo  repository.LikeRepository
	assets    storage.Service
}

func NewService(videoRepo repository.VideoRepository, likeRepo repository.LikeRepository, assets storage.Service) Service {
	return &service{videoRepo: videoRepo, likeRepo: likeRepo, assets: assets}
}

// Publish commits both assets before the record is inserted, so a stored
// video never carries a dangling reference. A failure after the first commit
// releases whatever was already uploaded.
func (s *service) Publish(ctx context.Context, ownerID uuid.UUID, input domain.PublishVideoInput, videoFile, thumbnail storage.LocalFile) (*domain.Video, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: a positive video duration is required", domain.ErrValidation)
	}

	// Both mime types are checked before either upload starts.
	if err := storage.ValidateMime(storage.KindVideo, videoFile.MimeType); err != nil {
		return nil, err
	}
	if err := storage.ValidateMime(storage.KindImage, thumbnail.MimeType); err != nil {
		return nil, err
	}

	videoUpload, err := s.assets.Commit(ctx, videoFile.Path, videoFile.MimeType, storage.KindVideo)
	if err != nil {
		return nil, err
	}

	thumbUpload, err := s.assets.Commit(ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage)
	if err != nil {
		s.release(ctx, videoUpload.URL)
		return nil, err
	}

	video := &domain.Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		VideoURL:     videoUpload.URL,
		ThumbnailURL: thumbUpload.URL,
		Duration:     input.Duration,
		IsPublished:  true,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.release(ctx, videoUpload.URL)
		s.release(ctx, thumbUpload.URL)
		return nil, err
	}

	return video, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByIDWithOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video not found", domain.ErrNotFound)
	}

	if err := s.videoRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("Warning: failed to bump views for video %s: %v", id, err)
	} else {
		video.Views++
	}

	count, err := s.likeRepo.CountByTarget(ctx, id, domain.LikeTargetVideo)
	if err != nil {
		log.Printf("Warning: failed to count likes for video %s: %v", id, err)
	} else {
		video.LikeCount = count
	}

	return video, nil
}

func (s *service) List(ctx context.Context, filter domain.VideoListFilter, sort domain.SortParams, params domain.PaginationParams) (domain.PaginatedResponse[domain.Video], error) {
	params.Validate()
	if err := sort.Validate(domain.VideoSortFields); err != nil {
		return domain.PaginatedResponse[domain.Video]{}, err
	}

	videos, total, err := s.videoRepo.List(ctx, filter, sort, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Video]{}, err
	}

	return domain.NewPaginatedResponse(videos, params.Page, params.PageSize, total), nil
}

// Update replaces the thumbnail new-first: the fresh asset is committed and
// persisted before the stale one is released, so the record never points at
// nothing. The brief window with both assets remote is accepted.
func (s *service) Update(ctx context.Context, actorID, id uuid.UUID, input domain.UpdateVideoInput, thumbnail *storage.LocalFile) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, video.OwnerID, false); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
		}
		video.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		video.Description = strings.TrimSpace(*input.Description)
	}

	// Validation runs before the new thumbnail is committed so a bad field
	// never strands a freshly uploaded asset.
	oldThumbnail := ""
	if thumbnail != nil {
		upload, err := s.assets.Commit(ctx, thumbnail.Path, thumbnail.MimeType, storage.KindImage)
		if err != nil {
			return nil, err
		}
		oldThumbnail = video.ThumbnailURL
		video.ThumbnailURL = upload.URL
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		if thumbnail != nil {
			s.release(ctx, video.ThumbnailURL)
		}
		return nil, err
	}

	if oldThumbnail != "" {
		s.release(ctx, oldThumbnail)
	}

	return video, nil
}

// Delete releases both remote assets and removes the record. Asset releases
// are attempted even if one of them fails; any irrecoverable release failure
// surfaces as a deletion error.
func (s *service) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	if actor == nil {
		return fmt.Errorf("%w: missing actor identity", domain.ErrUnauthenticated)
	}

	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video == nil {
		return fmt.Errorf("%w: video not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actor.ID, video.OwnerID, actor.IsAdmin); err != nil {
		return err
	}

	var releaseErr error
	if video.VideoURL != "" {
		if err := s.assets.Release(ctx, video.VideoURL); err != nil {
			releaseErr = err
		}
	}
	if video.ThumbnailURL != "" {
		if err := s.assets.Release(ctx, video.ThumbnailURL); err != nil {
			releaseErr = err
		}
	}
	if releaseErr != nil {
		return fmt.Errorf("%w: failed to release video assets: %v", domain.ErrDeletion, releaseErr)
	}

	return s.videoRepo.Delete(ctx, id)
}

func (s *service) TogglePublish(ctx context.Context, actorID, id uuid.UUID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("%w: video not found", domain.ErrNotFound)
	}

	if err := guard.Authorize(actorID, video.OwnerID, false); err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// release is the best-effort cleanup path; failures are logged, not retried.
func (s *service) release(ctx context.Context, remoteURL string) {
	if err := s.assets.Release(ctx, remoteURL); err != nil {
		log.Printf("Warning: failed to release remote asset %s: %v", remoteURL, err)
	}
}
