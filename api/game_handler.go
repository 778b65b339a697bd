package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playday-app/playday-backend/auth"
	gm "github.com/playday-app/playday-backend/game"
	rt "github.com/playday-app/playday-backend/rental"
)

type GameService interface {
	CreateFromRental(ctx context.Context, ident auth.Identity, rentalID string, input gm.CreateInput) (gm.Game, error)
	Join(ctx context.Context, ident auth.Identity, gameID string) (gm.Game, error)
	ListByParticipant(ctx context.Context, email string) ([]gm.Game, error)
	Get(ctx context.Context, id string) (gm.Game, error)
}

type GameHandler struct {
	service GameService
}

func NewGameHandler(service GameService) *GameHandler {
	return &GameHandler{service: service}
}

// Register wires the authenticated game routes; Get is registered separately
// because it only needs optional auth.
func (h *GameHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.ListJoined)
	rg.PUT("/:id/join", h.Join)
}

func (h *GameHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/:id", h.Get)
}

type createGameRequest struct {
	RentalID      string `json:"rentalId" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	GameType      string `json:"gameType" binding:"required"`
	PlayersNeeded int    `json:"playersNeeded" binding:"gte=0"`
}

func (h *GameHandler) Create(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	var req createGameRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	input := gm.CreateInput{
		Title:         req.Title,
		Description:   req.Description,
		GameType:      req.GameType,
		PlayersNeeded: req.PlayersNeeded,
	}

	created, err := h.service.CreateFromRental(c.Request.Context(), ident, req.RentalID, input)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, rt.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "rental not found"})
		case errors.Is(err, gm.ErrNotRentalOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the rental owner can create a game"})
		case errors.Is(err, gm.ErrRentalInPast):
			c.JSON(http.StatusConflict, gin.H{"error": "cannot create a game for a past rental"})
		case errors.Is(err, gm.ErrRentalAlreadyConverted):
			c.JSON(http.StatusConflict, gin.H{"error": "rental already has a game"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		}

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *GameHandler) Join(c *gin.Context) {
	ident, _ := CurrentIdentity(c)
	id := c.Param("id")

	joined, err := h.service.Join(c.Request.Context(), ident, id)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, gm.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		case errors.Is(err, gm.ErrAlreadyJoined):
			c.JSON(http.StatusConflict, gin.H{"error": "already joined"})
		case errors.Is(err, gm.ErrGameFull):
			c.JSON(http.StatusConflict, gin.H{"error": "game full"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join game"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, joined)
}

type gameView struct {
	gm.Game
	Past bool `json:"past"`
}

func (h *GameHandler) ListJoined(c *gin.Context) {
	ident, _ := CurrentIdentity(c)

	games, err := h.service.ListByParticipant(c.Request.Context(), ident.Email)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve games"})
		return
	}

	now := time.Now()
	views := make([]gameView, 0, len(games))

	for _, game := range games {
		views = append(views, gameView{Game: game, Past: game.IsPast(now)})
	}

	c.IndentedJSON(http.StatusOK, views)
}

type gameDetailView struct {
	gm.Game
	Eligibility gm.Eligibility `json:"eligibility"`
}

func (h *GameHandler) Get(c *gin.Context) {
	id := c.Param("id")

	game, err := h.service.Get(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, gm.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch game"})
		return
	}

	viewer := ""

	if ident, ok := CurrentIdentity(c); ok {
		viewer = ident.Email
	}

	c.IndentedJSON(http.StatusOK, gameDetailView{
		Game:        game,
		Eligibility: gm.EligibilityFor(game, viewer),
	})
}
