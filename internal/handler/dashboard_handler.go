package handler

import (
	"github.com/gofiber/fiber/v2"

	"streamhub/internal/middleware"
	"streamhub/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	result, err := h.dashboardService.GetChannelStats(c.Context(), userID)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	params := getPaginationParams(c)

	result, err := h.dashboardService.ListChannelVideos(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Channel videos fetched successfully")
}
