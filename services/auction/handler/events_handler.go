package handler

import (
	"io"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// BidFeed is the slice of the simulator the events handler needs.
type BidFeed interface {
	Subscribe(handler func(model.Auction)) int
	Unsubscribe(token int)
}

// EventsHandler streams simulator-committed bids to clients over SSE.
type EventsHandler struct {
	feed BidFeed
}

func NewEventsHandler(feed BidFeed) *EventsHandler {
	return &EventsHandler{feed: feed}
}

// StreamHandler handles GET /events. Updates are bridged from the simulator
// through a buffered channel; a slow client drops events rather than block
// the simulator's timer loop.
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	events := make(chan model.Auction, 16)

	token := h.feed.Subscribe(func(a model.Auction) {
		select {
		case events <- a:
		default: // client is behind, drop
		}
	})
	defer h.feed.Unsubscribe(token)

	utils.Info("StreamHandler: client subscribed", map[string]any{"token": token})

	c.Stream(func(w io.Writer) bool {
		select {
		case auction := <-events:
			c.SSEvent("bid", helpers.NewAuctionResponse(auction))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
