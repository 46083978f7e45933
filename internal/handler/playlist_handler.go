package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/config"
	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/playlist"
	"streamhub/internal/service/storage"
)

type PlaylistHandler struct {
	playlistService playlist.Service
	cfg             *config.Config
}

func NewPlaylistHandler(playlistService playlist.Service, cfg *config.Config) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService, cfg: cfg}
}

func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreatePlaylistInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	thumbnail, err := h.optionalThumbnail(c)
	if err != nil {
		return err
	}

	result, err := h.playlistService.Create(c.Context(), userID, input, thumbnail)
	if err != nil {
		thumbnail.Discard()
		return err
	}

	return respond(c, fiber.StatusCreated, result, "Playlist created successfully")
}

func (h *PlaylistHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	params := getPaginationParams(c)

	result, err := h.playlistService.ListByUser(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "User playlists fetched successfully")
}

func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	playlistID, err := uuid.Parse(c.Params("playlistId"))
	if err != nil {
		return middleware.BadRequest("Invalid playlist ID")
	}

	result, err := h.playlistService.GetByID(c.Context(), playlistID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Playlist fetched successfully")
}

func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	playlistID, err := uuid.Parse(c.Params("playlistId"))
	if err != nil {
		return middleware.BadRequest("Invalid playlist ID")
	}

	var input domain.UpdatePlaylistInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	thumbnail, err := h.optionalThumbnail(c)
	if err != nil {
		return err
	}

	result, err := h.playlistService.Update(c.Context(), userID, playlistID, input, thumbnail)
	if err != nil {
		thumbnail.Discard()
		return err
	}

	return respond(c, fiber.StatusOK, result, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	playlistID, err := uuid.Parse(c.Params("playlistId"))
	if err != nil {
		return middleware.BadRequest("Invalid playlist ID")
	}

	if err := h.playlistService.Delete(c.Context(), actor, playlistID); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, nil, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	playlistID, err := uuid.Parse(c.Params("playlistId"))
	if err != nil {
		return middleware.BadRequest("Invalid playlist ID")
	}
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	result, err := h.playlistService.AddVideo(c.Context(), userID, playlistID, videoID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	playlistID, err := uuid.Parse(c.Params("playlistId"))
	if err != nil {
		return middleware.BadRequest("Invalid playlist ID")
	}
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	result, err := h.playlistService.RemoveVideo(c.Context(), userID, playlistID, videoID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Video removed from playlist successfully")
}

func (h *PlaylistHandler) optionalThumbnail(c *fiber.Ctx) (*storage.LocalFile, error) {
	header, err := c.FormFile("thumbnail")
	if err != nil {
		return nil, nil
	}
	if header.Size > h.cfg.MaxImageSize {
		return nil, middleware.BadRequest("Thumbnail file is too large")
	}

	file, err := saveTempFile(c, header)
	if err != nil {
		return nil, err
	}
	return &file, nil
}
