package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Video        VideoRepository
	Comment      CommentRepository
	Tweet        TweetRepository
	Playlist     PlaylistRepository
	Like         LikeRepository
	Subscription SubscriptionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Video:        NewVideoRepository(db),
		Comment:      NewCommentRepository(db),
		Tweet:        NewTweetRepository(db),
		Playlist:     NewPlaylistRepository(db),
		Like:         NewLikeRepository(db),
		Subscription: NewSubscriptionRepository(db),
	}
}
