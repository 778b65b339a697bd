package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playday-app/playday-backend/auth"
	usr "github.com/playday-app/playday-backend/user"
)

type UserService interface {
	Get(ctx context.Context, ident auth.Identity) (usr.Profile, error)
	Rename(ctx context.Context, ident auth.Identity, name string) (usr.Profile, error)
	UpdateAvatar(ctx context.Context, ident auth.Identity, r io.Reader) (usr.Profile, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.PUT("", h.Rename)
	rg.POST("/picture", h.UploadPicture)
}

func (h *UserHandler) Get(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	profile, err := h.service.Get(c.Request.Context(), ident)

	if err != nil {
		c.Error(err)
		if errors.Is(err, usr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user data"})
		return
	}

	c.IndentedJSON(http.StatusOK, profile)
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *UserHandler) Rename(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	var req renameRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	profile, err := h.service.Rename(c.Request.Context(), ident, req.Name)

	if err != nil {
		c.Error(err)
		if errors.Is(err, usr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.IndentedJSON(http.StatusOK, profile)
}

func (h *UserHandler) UploadPicture(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	file, _, err := c.Request.FormFile("image")

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}

	defer file.Close()

	profile, err := h.service.UpdateAvatar(c.Request.Context(), ident, file)

	if err != nil {
		c.Error(err)
		if errors.Is(err, usr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload profile picture"})
		return
	}

	c.IndentedJSON(http.StatusOK, profile)
}
