package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playday-app/playday-backend/realtime"
)

type SnapshotBroker interface {
	Subscribe(ctx context.Context, topic, key string) (*realtime.Subscription, error)
}

// StreamHandler serves live collection snapshots over SSE. Every event named
// "snapshot" carries the full replacement for the subscribed collection; an
// "error" event means the subscription terminated and the client must
// resubscribe rather than trust the last view.
type StreamHandler struct {
	broker SnapshotBroker
}

func NewStreamHandler(broker SnapshotBroker) *StreamHandler {
	return &StreamHandler{broker: broker}
}

func (h *StreamHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/rentals", h.stream(realtime.TopicRentals))
	rg.GET("/games", h.stream(realtime.TopicGames))
}

func (h *StreamHandler) stream(topic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, _ := CurrentIdentity(c)

		sub, err := h.broker.Subscribe(c.Request.Context(), topic, ident.Email)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open stream"})
			return
		}

		defer sub.Close()

		c.Stream(func(w io.Writer) bool {
			select {
			case snapshot, ok := <-sub.Snapshots():
				if !ok {
					return false
				}
				c.SSEvent("snapshot", string(snapshot))
				return true
			case err := <-sub.Errors():
				c.SSEvent("error", err.Error())
				return false
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
