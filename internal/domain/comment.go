package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post"`
	Body      string    `json:"body"`
	AuthorID  uuid.UUID `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Hydrated from joins, not stored on the comments table.
	Author *Profile `json:"-"`
	Post   *Post    `json:"-"`
}
