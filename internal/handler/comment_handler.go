package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/domain"
	"streamhub/internal/middleware"
	"streamhub/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	params := getPaginationParams(c)

	result, err := h.commentService.ListByVideo(c.Context(), videoID, params)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Comments retrieved successfully")
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	videoID, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.commentService.Create(c.Context(), videoID, userID, input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusCreated, result, "Comment added successfully")
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.commentService.Update(c.Context(), userID, commentID, input)
	if err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, result, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), actor, commentID); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, nil, "Comment deleted successfully")
}
