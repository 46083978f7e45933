package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/like"
)

type LikeHandler struct {
	likeService like.Service
}

func NewLikeHandler(likeService like.Service) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) ToggleVideo(c *fiber.Ctx) error {
	return h.toggle(c, "videoId", domain.LikeTargetVideo)
}

func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	return h.toggle(c, "commentId", domain.LikeTargetComment)
}

func (h *LikeHandler) ToggleTweet(c *fiber.Ctx) error {
	return h.toggle(c, "tweetId", domain.LikeTargetTweet)
}

func (h *LikeHandler) toggle(c *fiber.Ctx, param string, target domain.LikeTarget) error {
	userID := middleware.GetCurrentUserID(c)

	targetID, err := uuid.Parse(c.Params(param))
	if err != nil {
		return middleware.BadRequest("Invalid " + string(target) + " ID")
	}

	result, err := h.likeService.Toggle(c.Context(), userID, targetID, target)
	if err != nil {
		return err
	}

	if result.Created {
		return respond(c, fiber.StatusCreated, result, "Liked successfully")
	}
	return respond(c, fiber.StatusOK, result, "Unliked successfully")
}

func (h *LikeHandler) ListLikedVideos(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	params := getPaginationParams(c)

	result, err := h.likeService.ListLikedVideos(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Liked videos fetched successfully")
}
