package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	ScreenName   string    `json:"screen_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the public slice of a user embedded in hydrated responses.
// It never carries the user id, email or password hash.
type Profile struct {
	ScreenName string    `json:"screen_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ScreenName: u.ScreenName,
		CreatedAt:  u.CreatedAt,
	}
}
