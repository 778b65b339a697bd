package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	fd "github.com/playday-app/playday-backend/field"
	"github.com/playday-app/playday-backend/payment"
	rt "github.com/playday-app/playday-backend/rental"
)

type RentalService interface {
	Quote(ctx context.Context, fieldName string, start, end time.Time) (rt.Quote, error)
	Create(ctx context.Context, owner string, quote *rt.Quote, card payment.Card) (rt.Rental, error)
	ListByOwner(ctx context.Context, owner string) ([]rt.Rental, error)
}

type RentalHandler struct {
	service RentalService
}

func NewRentalHandler(service RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

func (h *RentalHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/quote", h.Quote)
	rg.POST("", h.Create)
	rg.GET("", h.ListOwn)
}

type quoteRequest struct {
	FieldName string    `json:"fieldName" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

func (h *RentalHandler) Quote(c *gin.Context) {
	var req quoteRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req.FieldName, req.StartDate, req.EndDate)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fd.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "field not found"})
		} else if errors.Is(err, rt.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "you need to select a valid time"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quote"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, quote)
}

type createRentalRequest struct {
	Quote *rt.Quote    `json:"quote"`
	Card  payment.Card `json:"card"`
}

func (h *RentalHandler) Create(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	var req createRentalRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	rental, err := h.service.Create(c.Request.Context(), ident.Email, req.Quote, req.Card)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, rt.ErrMissingQuote):
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied: choose a field before paying"})
		case errors.Is(err, fd.ErrFieldNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "field not found"})
		case errors.Is(err, rt.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "you need to select a valid time"})
		case errors.Is(err, payment.ErrIncompleteDetails):
			c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all payment fields"})
		case errors.Is(err, payment.ErrInvalidCard):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "card number is incorrect or unsupported"})
		case errors.Is(err, payment.ErrCardExpired):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "card expiry is invalid or in the past"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create rental"})
		}

		return
	}

	c.JSON(http.StatusCreated, rental)
}

type rentalView struct {
	rt.Rental
	Past bool `json:"past"`
}

func (h *RentalHandler) ListOwn(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	rentals, err := h.service.ListByOwner(c.Request.Context(), ident.Email)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve rentals"})
		return
	}

	now := time.Now()
	views := make([]rentalView, 0, len(rentals))

	for _, rental := range rentals {
		views = append(views, rentalView{Rental: rental, Past: rental.IsPast(now)})
	}

	c.IndentedJSON(http.StatusOK, views)
}
