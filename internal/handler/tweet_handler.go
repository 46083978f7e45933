package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/tweet"
)

type TweetHandler struct {
	tweetService tweet.Service
}

func NewTweetHandler(tweetService tweet.Service) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

func (h *TweetHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateTweetInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.tweetService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result, "Tweet created successfully")
}

func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	params := getPaginationParams(c)

	result, err := h.tweetService.ListByUser(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Tweets retrieved successfully")
}

func (h *TweetHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	tweetID, err := uuid.Parse(c.Params("tweetId"))
	if err != nil {
		return middleware.BadRequest("Invalid tweet ID")
	}

	var input domain.UpdateTweetInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.tweetService.Update(c.Context(), userID, tweetID, input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	tweetID, err := uuid.Parse(c.Params("tweetId"))
	if err != nil {
		return middleware.BadRequest("Invalid tweet ID")
	}

	if err := h.tweetService.Delete(c.Context(), actor, tweetID); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, nil, "Tweet deleted successfully")
}
