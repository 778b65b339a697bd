package user

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// Profile is the stored user document. Identity (uid, email) is attested by
// the identity provider; the rest is profile data owned by the user.
type Profile struct {
	UID            string    `json:"uid"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}
