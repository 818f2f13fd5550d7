package helpers

import (
	"time"

	model "auction-marketplace/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	SellerID      string  `json:"seller_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	ImageURL      string  `json:"image_url"`
	Category      string  `json:"category"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     string        `json:"auction_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"image_url"`
	Category      string        `json:"category"`
	StartingPrice float64       `json:"starting_price"`
	CurrentPrice  float64       `json:"current_price"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	SellerID      string        `json:"seller_id"`
	SellerName    string        `json:"seller_name"`
	Bids          []BidResponse `json:"bids"`
	Status        string        `json:"status"`
}

// NewBidResponse maps a domain bid to its wire shape.
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAuctionResponse maps a domain auction to its wire shape.
func NewAuctionResponse(a model.Auction) AuctionResponse {
	bids := make([]BidResponse, 0, len(a.Bids))
	for _, b := range a.Bids {
		bids = append(bids, NewBidResponse(b))
	}
	return AuctionResponse{
		AuctionID:     a.AuctionID,
		Title:         a.Title,
		Description:   a.Description,
		ImageURL:      a.ImageURL,
		Category:      a.Category,
		StartingPrice: a.StartingPrice,
		CurrentPrice:  a.CurrentPrice,
		StartDate:     a.StartDate.UTC().Format(time.RFC3339),
		EndDate:       a.EndDate.UTC().Format(time.RFC3339),
		SellerID:      a.SellerID,
		SellerName:    a.SellerName,
		Bids:          bids,
		Status:        string(a.Status),
	}
}

// NewAuctionListResponse maps a slice of auctions, never returning nil.
func NewAuctionListResponse(auctions []model.Auction) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, NewAuctionResponse(a))
	}
	return out
}
