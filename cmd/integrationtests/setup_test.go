package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with a fresh in-memory store,
// the sample user roster, and the given auctions.
func SetupTestRouter(auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	directory := repository.NewMemoryDirectory()
	for _, u := range repository.SeedUsers() {
		directory.AddUser(u)
	}
	for _, a := range auctions {
		store.Insert(a)
	}

	service := auction.NewAuctionService(store, directory)
	return server.SetupRouter(service, nil)
}

// activeAuction builds an auction open for bidding around the wall clock.
func activeAuction(id, sellerID string, currentPrice float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:     id,
		Title:         "title-" + id,
		Description:   "description-" + id,
		Category:      "Collectibles",
		StartingPrice: currentPrice,
		CurrentPrice:  currentPrice,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		SellerID:      sellerID,
		SellerName:    "Seller",
		Bids:          []model.Bid{},
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope, returning the data payload for 2xx creations.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 200 || w.Code == 201 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}
