package domain

import (
	"time"

	"github.com/google/uuid"
)

// A like is never updated; the only valid change is deletion.
type Like struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post"`
	BackerID  uuid.UUID `json:"backer"`
	CreatedAt time.Time `json:"created_at"`

	// Hydrated from joins, not stored on the likes table.
	Backer *Profile `json:"-"`
	Post   *Post    `json:"-"`
}
