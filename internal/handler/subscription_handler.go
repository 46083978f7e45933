package handler

import (
	"github.com/gofiber/fiber/v2"

	"streamhub/internal/middleware"
	"streamhub/internal/service/subscription"
)

type SubscriptionHandler struct {
	subscriptionService subscription.Service
}

func NewSubscriptionHandler(subscriptionService subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	channelName := c.Params("channelName")
	if channelName == "" {
		return middleware.BadRequest("Channel name is required")
	}

	result, err := h.subscriptionService.Toggle(c.Context(), userID, channelName)
	if err != nil {
		return err
	}

	if result.Subscribed {
		return respond(c, fiber.StatusCreated, result, "Subscribed successfully")
	}
	return respond(c, fiber.StatusOK, result, "Unsubscribed successfully")
}

func (h *SubscriptionHandler) ListSubscribers(c *fiber.Ctx) error {
	channelName := c.Params("channelName")
	if channelName == "" {
		return middleware.BadRequest("Channel name is required")
	}

	params := getPaginationParams(c)

	result, err := h.subscriptionService.ListSubscribers(c.Context(), channelName, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscribedChannels(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return middleware.BadRequest("Username is required")
	}

	params := getPaginationParams(c)

	result, err := h.subscriptionService.ListSubscribedChannels(c.Context(), username, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Subscribed channels fetched successfully")
}
