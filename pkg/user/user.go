package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UUID         uuid.UUID `json:"uuid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	JWTVersion   uint      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Profile      Profile   `json:"profile"`
}

// Profile is created together with its user at sign-up and is
// mutable only by that user.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhoneText string `json:"phone_text"`
	AvatarUrl string `json:"avatar_url"`
}
