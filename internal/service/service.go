package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"streamhub/internal/config"
	"streamhub/internal/repository"
	"streamhub/internal/service/auth"
	"streamhub/internal/service/comment"
	"streamhub/internal/service/dashboard"
	"streamhub/internal/service/like"
	"streamhub/internal/service/playlist"
	"streamhub/internal/service/storage"
	"streamhub/internal/service/subscription"
	"streamhub/internal/service/tweet"
	"streamhub/internal/service/video"
)

type Services struct {
	Auth         auth.Service
	Storage      storage.Service
	Video        video.Service
	Comment      comment.Service
	Tweet        tweet.Service
	Playlist     playlist.Service
	Like         like.Service
	Subscription subscription.Service
	Dashboard    dashboard.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	storageService := storage.NewService(minioClient, cfg)

	return &Services{
		Auth:         auth.NewService(repos.User, cfg),
		Storage:      storageService,
		Video:        video.NewService(repos.Video, repos.Like, storageService),
		Comment:      comment.NewService(repos.Comment, repos.Video, redisClient),
		Tweet:        tweet.NewService(repos.Tweet, repos.User),
		Playlist:     playlist.NewService(repos.Playlist, repos.Video, storageService),
		Like:         like.NewService(repos.Like, repos.Video, repos.Comment, repos.Tweet),
		Subscription: subscription.NewService(repos.Subscription, repos.User),
		Dashboard:    dashboard.NewService(repos.Video, repos.Subscription, redisClient),
	}
}
