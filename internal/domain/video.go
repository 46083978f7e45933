package domain

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID           uuid.UUID  `json:"id" db:"video_id"`
	OwnerID      uuid.UUID  `json:"owner_id" db:"owner_id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	VideoURL     string     `json:"video_url" db:"video_url"`
	ThumbnailURL string     `json:"thumbnail_url" db:"thumbnail_url"`
	Duration     float64    `json:"duration" db:"duration"`
	Views        int64      `json:"views" db:"views"`
	IsPublished  bool       `json:"is_published" db:"is_published"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`

	// LikeCount is filled on single-video fetches, not on list queries.
	LikeCount int64        `json:"like_count" db:"-"`
	Owner     *UserSummary `json:"owner,omitempty"`
}

type PublishVideoInput struct {
	Title       string  `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" form:"description" validate:"max=5000"`
	Duration    float64 `json:"duration" form:"duration" validate:"required,gt=0"`
}

type UpdateVideoInput struct {
	Title       *string `json:"title,omitempty" form:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,max=5000"`
}

// VideoListFilter narrows the feed; an empty Query matches everything.
type VideoListFilter struct {
	Query   string
	OwnerID *uuid.UUID
}

// VideoSortFields is the allow-list for feed ordering. Anything else is a
// validation error, never a silent fallback.
var VideoSortFields = []string{"created_at", "title", "views"}
