package models

import "time"

// User represents a participant identity supplied by the identity provider.
// The core never mutates users; it only reads id/name to attribute activity.
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Bid represents a user's offer against an auction. Immutable once accepted.
type Bid struct {
	BidID     string    `json:"bid_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction represents a sellable listing with a time-bounded bidding window.
// CurrentPrice always equals the last accepted bid's amount, or StartingPrice
// when no bids exist. Bids are append-only in acceptance order.
type Auction struct {
	AuctionID     string        `json:"auction_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"image_url"`
	Category      string        `json:"category"`
	StartingPrice float64       `json:"starting_price"`
	CurrentPrice  float64       `json:"current_price"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	SellerID      string        `json:"seller_id"`
	SellerName    string        `json:"seller_name"`
	Bids          []Bid         `json:"bids"`
	Status        AuctionStatus `json:"status"`
}

// Clone returns a deep copy of the auction so callers cannot mutate stored
// state through a returned snapshot.
func (a Auction) Clone() Auction {
	c := a
	c.Bids = append([]Bid(nil), a.Bids...)
	return c
}

// AuctionForm carries untrusted creation input from the UI.
type AuctionForm struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	Category      string  `json:"category"`
	StartingPrice float64 `json:"starting_price"`
	DurationHours float64 `json:"duration_hours"`
}
