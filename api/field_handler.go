package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	fd "github.com/playday-app/playday-backend/field"
)

type FieldService interface {
	List(ctx context.Context) ([]fd.Field, error)
}

type FieldHandler struct {
	service FieldService
}

func NewFieldHandler(service FieldService) *FieldHandler {
	return &FieldHandler{service: service}
}

func (h *FieldHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *FieldHandler) List(c *gin.Context) {
	fields, err := h.service.List(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve fields",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, fields)
}
