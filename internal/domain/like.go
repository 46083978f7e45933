package domain

import (
	"time"

	"github.com/google/uuid"
)

// LikeTarget discriminates which entity a like edge points at. Together with
// (user_id, target_id) it forms the unique tuple the toggle operates on.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

func (t LikeTarget) IsValid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	default:
		return false
	}
}

type Like struct {
	ID         uuid.UUID  `json:"id" db:"like_id"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	TargetID   uuid.UUID  `json:"target_id" db:"target_id"`
	TargetType LikeTarget `json:"target_type" db:"target_type"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// LikedVideo is a like edge enriched with its video.
type LikedVideo struct {
	LikeID       uuid.UUID `json:"like_id" db:"like_id"`
	LikedAt      time.Time `json:"liked_at" db:"liked_at"`
	VideoID      uuid.UUID `json:"video_id" db:"video_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	ThumbnailURL string    `json:"thumbnail_url" db:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ToggleResult reports which side of the toggle ran.
type ToggleResult struct {
	Created bool       `json:"created"`
	LikeID  *uuid.UUID `json:"like_id,omitempty"`
}
