package domain

import "errors"

// Services wrap these with %w and a human message; middleware.ErrorHandler is
// the only place they are translated to HTTP status codes.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrUpload          = errors.New("upload failed")
	ErrDeletion        = errors.New("deletion failed")
)
