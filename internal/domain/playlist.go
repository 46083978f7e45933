package domain

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID           uuid.UUID  `json:"id" db:"playlist_id"`
	OwnerID      uuid.UUID  `json:"owner_id" db:"owner_id"`
	Name         string     `json:"name" db:"name"`
	Description  string     `json:"description" db:"description"`
	ThumbnailURL *string    `json:"thumbnail_url" db:"thumbnail_url"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`

	Videos []Video `json:"videos,omitempty"`
}

type CreatePlaylistInput struct {
	Name        string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" form:"description" validate:"max=1000"`
}

type UpdatePlaylistInput struct {
	Name        *string `json:"name,omitempty" form:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,max=1000"`
}
