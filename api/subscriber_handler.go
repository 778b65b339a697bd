package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	sb "github.com/playday-app/playday-backend/subscriber"
)

type SubscriberService interface {
	Subscribe(ctx context.Context, email string) error
}

type SubscriberHandler struct {
	service SubscriberService
}

func NewSubscriberHandler(service SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

func (h *SubscriberHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Subscribe)
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.Subscribe(c.Request.Context(), req.Email)

	if err != nil {
		c.Error(err)
		if errors.Is(err, sb.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please enter a valid email address"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "subscribed"})
}
