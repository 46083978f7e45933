package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/config"
	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/storage"
	"streamhub/internal/service/video"
)

type VideoHandler struct {
	videoService video.Service
	cfg          *config.Config
}

func NewVideoHandler(videoService video.Service, cfg *config.Config) *VideoHandler {
	return &VideoHandler{videoService: videoService, cfg: cfg}
}

func (h *VideoHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	sort := domain.SortParams{
		SortBy:    c.Query("sortBy", "created_at"),
		SortOrder: c.Query("sortType", "desc"),
	}
	// The public API uses camelCase sort names.
	if sort.SortBy == "createdAt" {
		sort.SortBy = "created_at"
	}

	filter := domain.VideoListFilter{Query: c.Query("query")}

	result, err := h.videoService.List(c.Context(), filter, sort, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Videos fetched successfully")
}

func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.PublishVideoInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	videoFileHeader, err := c.FormFile("videoFile")
	if err != nil {
		return middleware.BadRequest("Video file and thumbnail are required")
	}
	thumbnailHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.BadRequest("Video file and thumbnail are required")
	}

	if videoFileHeader.Size > h.cfg.MaxVideoSize {
		return middleware.BadRequest("Video file is too large")
	}
	if thumbnailHeader.Size > h.cfg.MaxImageSize {
		return middleware.BadRequest("Thumbnail file is too large")
	}

	videoFile, err := saveTempFile(c, videoFileHeader)
	if err != nil {
		return err
	}
	thumbnail, err := saveTempFile(c, thumbnailHeader)
	if err != nil {
		videoFile.Discard()
		return err
	}

	published, err := h.videoService.Publish(c.Context(), userID, input, videoFile, thumbnail)
	if err != nil {
		// Spooled files the service never committed would otherwise linger
		// in the temp dir.
		videoFile.Discard()
		thumbnail.Discard()
		return err
	}

	return respond(c, fiber.StatusCreated, published, "Video published successfully")
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	result, err := h.videoService.GetByID(c.Context(), videoID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Video fetched successfully")
}

func (h *VideoHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	var input domain.UpdateVideoInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	var thumbnail *storage.LocalFile
	if header, err := c.FormFile("thumbnail"); err == nil {
		if header.Size > h.cfg.MaxImageSize {
			return middleware.BadRequest("Thumbnail file is too large")
		}
		file, err := saveTempFile(c, header)
		if err != nil {
			return err
		}
		thumbnail = &file
	}

	result, err := h.videoService.Update(c.Context(), userID, videoID, input, thumbnail)
	if err != nil {
		thumbnail.Discard()
		return err
	}

	return respond(c, fiber.StatusOK, result, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	if err := h.videoService.Delete(c.Context(), actor, videoID); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	result, err := h.videoService.TogglePublish(c.Context(), userID, videoID)
	if err != nil {
		return err
	}

	message := "Video unpublished successfully"
	if result.IsPublished {
		message = "Video published successfully"
	}
	return respond(c, fiber.StatusOK, result, message)
}
