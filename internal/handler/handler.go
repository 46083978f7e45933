package handler

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"streamhub/internal/config"
	"streamhub/internal/domain"
	"streamhub/internal/service"
	"streamhub/internal/service/storage"
)

type Handlers struct {
	Auth         *AuthHandler
	Video        *VideoHandler
	Comment      *CommentHandler
	Tweet        *TweetHandler
	Playlist     *PlaylistHandler
	Like         *LikeHandler
	Subscription *SubscriptionHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Video:        NewVideoHandler(services.Video, cfg),
		Comment:      NewCommentHandler(services.Comment),
		Tweet:        NewTweetHandler(services.Tweet),
		Playlist:     NewPlaylistHandler(services.Playlist, cfg),
		Like:         NewLikeHandler(services.Like),
		Subscription: NewSubscriptionHandler(services.Subscription),
		Dashboard:    NewDashboardHandler(services.Dashboard),
	}
}

// envelope is the response shape every endpoint answers with.
type envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if limit := c.QueryInt("limit", 10); limit > 0 {
		params.PageSize = limit
	}

	params.Validate()
	return params
}

// saveTempFile spools an uploaded part to a temp path the storage service
// takes ownership of; from there it is deleted on every commit path.
func saveTempFile(c *fiber.Ctx, file *multipart.FileHeader) (storage.LocalFile, error) {
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("streamhub-%s%s", uuid.New(), filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, path); err != nil {
		return storage.LocalFile{}, fmt.Errorf("%w: failed to store uploaded file", domain.ErrUpload)
	}

	return storage.LocalFile{Path: path, MimeType: mimeType}, nil
}
