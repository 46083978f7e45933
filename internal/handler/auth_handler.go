package handler

import (
	"github.com/gofiber/fiber/v2"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, fiber.Map{
		"user":   user,
		"tokens": tokens,
	}, "User registered successfully")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, fiber.Map{
		"user":   user,
		"tokens": tokens,
	}, "Logged in successfully")
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input domain.RefreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	tokens, err := h.authService.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, tokens, "Token refreshed successfully")
}
