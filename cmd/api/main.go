package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"streamhub/internal/config"
	"streamhub/internal/handler"
	"streamhub/internal/middleware"
	"streamhub/internal/repository"
	"streamhub/internal/service"
	"streamhub/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxVideoSize) + 10*1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.Refresh)

	// The feed and single-video pages are public; everything else requires a
	// valid access token.
	v1.Get("/videos", h.Video.List)
	v1.Get("/videos/:videoId", h.Video.Get)

	protected := v1.Group("", middleware.AuthRequired(authService))

	videos := protected.Group("/videos")
	videos.Post("/", h.Video.Publish)
	videos.Patch("/:videoId", h.Video.Update)
	videos.Delete("/:videoId", h.Video.Delete)
	videos.Patch("/:videoId/toggle-publish", h.Video.TogglePublish)
	videos.Get("/:videoId/comments", h.Comment.List)
	videos.Post("/:videoId/comments", h.Comment.Create)

	comments := protected.Group("/comments")
	comments.Patch("/:commentId", h.Comment.Update)
	comments.Delete("/:commentId", h.Comment.Delete)

	tweets := protected.Group("/tweets")
	tweets.Post("/", h.Tweet.Create)
	tweets.Patch("/:tweetId", h.Tweet.Update)
	tweets.Delete("/:tweetId", h.Tweet.Delete)

	playlists := protected.Group("/playlists")
	playlists.Post("/", h.Playlist.Create)
	playlists.Get("/:playlistId", h.Playlist.Get)
	playlists.Patch("/:playlistId", h.Playlist.Update)
	playlists.Delete("/:playlistId", h.Playlist.Delete)
	playlists.Post("/:playlistId/videos/:videoId", h.Playlist.AddVideo)
	playlists.Delete("/:playlistId/videos/:videoId", h.Playlist.RemoveVideo)

	likes := protected.Group("/likes")
	likes.Get("/videos", h.Like.ListLikedVideos)
	likes.Post("/videos/:videoId", h.Like.ToggleVideo)
	likes.Post("/comments/:commentId", h.Like.ToggleComment)
	likes.Post("/tweets/:tweetId", h.Like.ToggleTweet)

	subscriptions := protected.Group("/subscriptions")
	subscriptions.Post("/:channelName", h.Subscription.Toggle)
	subscriptions.Get("/:channelName/subscribers", h.Subscription.ListSubscribers)

	users := protected.Group("/users")
	users.Get("/:userId/tweets", h.Tweet.ListByUser)
	users.Get("/:userId/playlists", h.Playlist.ListByUser)
	users.Get("/:username/subscribed", h.Subscription.ListSubscribedChannels)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.Stats)
	dashboard.Get("/videos", h.Dashboard.Videos)

	app.Use(func(c *fiber.Ctx) error {
		return middleware.NotFound("Route not found")
	})
}
