package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/playday-app/playday-backend/api"
	"github.com/playday-app/playday-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const middlewareTestSecret = "middleware-test-secret"

func signTestToken(t *testing.T, uid, email string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(middlewareTestSecret))

	require.NoError(t, err)

	return signed
}

func setupAuthRouter(t *testing.T, middleware gin.HandlerFunc) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(middleware)
	router.GET("/whoami", func(c *gin.Context) {
		ident, ok := api.CurrentIdentity(c)

		if !ok {
			c.JSON(http.StatusOK, gin.H{"email": ""})
			return
		}

		c.JSON(http.StatusOK, gin.H{"email": ident.Email})
	})

	return router
}

func TestAuth(t *testing.T) {
	verifier := auth.NewVerifier(middlewareTestSecret)

	t.Run("valid token passes identity through", func(t *testing.T) {
		router := setupAuthRouter(t, api.Auth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-1", "a@x.com"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router := setupAuthRouter(t, api.Auth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		router := setupAuthRouter(t, api.Auth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})

	t.Run("non bearer header", func(t *testing.T) {
		router := setupAuthRouter(t, api.Auth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	verifier := auth.NewVerifier(middlewareTestSecret)

	t.Run("valid token passes identity through", func(t *testing.T) {
		router := setupAuthRouter(t, api.OptionalAuth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-1", "a@x.com"))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
	})

	t.Run("missing header lets the request through", func(t *testing.T) {
		router := setupAuthRouter(t, api.OptionalAuth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"email":""}`, w.Body.String())
	})

	t.Run("invalid token lets the request through without identity", func(t *testing.T) {
		router := setupAuthRouter(t, api.OptionalAuth(verifier))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"email":""}`, w.Body.String())
	})
}
