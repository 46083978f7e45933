package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tweet struct {
	ID        uuid.UUID  `json:"id" db:"tweet_id"`
	OwnerID   uuid.UUID  `json:"owner_id" db:"owner_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Owner *UserSummary `json:"owner,omitempty"`
}

type CreateTweetInput struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

type UpdateTweetInput struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
