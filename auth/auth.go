// Package auth verifies access tokens issued by the identity provider and
// turns them into an explicit Identity value. Handlers receive the Identity
// through the request context instead of reaching into ambient auth state.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the signed-in user as attested by the identity provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates an HS256 access token and returns the Identity
// it attests. Expired, malformed, or incomplete tokens fail with
// ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})

	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if claims.UID == "" || claims.Email == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UID: claims.UID, Email: claims.Email}, nil
}
