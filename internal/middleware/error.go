package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"streamhub/internal/domain"
)

// ErrorEnvelope mirrors the success envelope in the handler package so every
// response, failure included, carries the same four fields.
type ErrorEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorHandler converts the typed error taxonomy into HTTP exactly once.
// Components never format responses themselves; they wrap the domain
// sentinels and return. 500-class messages are genericized so storage
// internals never reach the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		code = fiber.StatusBadRequest
		message = trimSentinel(err, domain.ErrValidation)
	case errors.Is(err, domain.ErrUnauthenticated):
		code = fiber.StatusUnauthorized
		message = trimSentinel(err, domain.ErrUnauthenticated)
	case errors.Is(err, domain.ErrForbidden):
		code = fiber.StatusForbidden
		message = trimSentinel(err, domain.ErrForbidden)
	case errors.Is(err, domain.ErrNotFound):
		code = fiber.StatusNotFound
		message = trimSentinel(err, domain.ErrNotFound)
	case errors.Is(err, domain.ErrUpload):
		code = fiber.StatusInternalServerError
		message = "Failed to upload file to storage"
	case errors.Is(err, domain.ErrDeletion):
		code = fiber.StatusInternalServerError
		message = "Failed to delete resource"
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
	}

	return c.Status(code).JSON(ErrorEnvelope{
		StatusCode: code,
		Data:       nil,
		Message:    message,
		Success:    false,
	})
}

// trimSentinel drops the sentinel prefix from a wrapped error so the client
// sees only the human message.
func trimSentinel(err error, sentinel error) string {
	msg := err.Error()
	if trimmed, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return trimmed
	}
	return msg
}

func BadRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func NotFound(message string) error {
	return fiber.NewError(fiber.StatusNotFound, message)
}
