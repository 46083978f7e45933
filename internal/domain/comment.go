package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `json:"id" db:"comment_id"`
	VideoID   uuid.UUID  `json:"video_id" db:"video_id"`
	OwnerID   uuid.UUID  `json:"owner_id" db:"owner_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Owner *UserSummary `json:"owner,omitempty"`
}

type CreateCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
