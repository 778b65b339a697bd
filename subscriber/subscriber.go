package subscriber

import (
	"errors"
	"regexp"
)

var ErrInvalidEmail = errors.New("invalid email address")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the address matches the signup form's pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
