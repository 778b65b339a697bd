package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/playday-app/playday-backend/auth"
)

const identityKey = "identity"

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth requires a valid bearer token and stores the resulting Identity in the
// request context. Mutations behind it never reach the store signed out.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		ident, err := verifier.Verify(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set(identityKey, ident)
	}
}

// OptionalAuth stores the Identity when a valid token is present and lets the
// request through either way. Used where signed-out viewers get a reduced
// view instead of a rejection.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if token == "" {
			return
		}

		if ident, err := verifier.Verify(token); err == nil {
			c.Set(identityKey, ident)
		}
	}
}

// CurrentIdentity returns the verified identity of the request, if any.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(identityKey)

	if !ok {
		return auth.Identity{}, false
	}

	ident, ok := value.(auth.Identity)

	return ident, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")

	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}
