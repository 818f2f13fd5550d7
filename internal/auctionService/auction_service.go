package auction

import (
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// defaultImageURL is used when a created auction carries no image.
const defaultImageURL = "https://images.unsplash.com/photo-1588344799137-9947e96e780f?auto=format&fit=crop&q=80&w=500"

// AuctionService defines the business logic for the auction marketplace:
// bid validation and application, auction creation, and read projections.
type AuctionService struct {
	store repository.AuctionStore
	users repository.UserDirectory
	now   func() time.Time
}

// NewAuctionService creates a new AuctionService instance using the wall clock.
func NewAuctionService(store repository.AuctionStore, users repository.UserDirectory) *AuctionService {
	return NewAuctionServiceWithClock(store, users, func() time.Time { return time.Now().UTC() })
}

// NewAuctionServiceWithClock creates a service with an injected clock so
// tests can drive time-gated rules deterministically.
func NewAuctionServiceWithClock(store repository.AuctionStore, users repository.UserDirectory, now func() time.Time) *AuctionService {
	return &AuctionService{
		store: store,
		users: users,
		now:   now,
	}
}

// PlaceBid validates and applies a user's bid against an auction. The whole
// validate-and-append cycle runs inside the store's per-auction critical
// section, so the checked current price is always the latest committed one.
// Checks run in a fixed order: existence, not started, already ended, amount
// too low, self-bid. The first failing check wins.
func (s *AuctionService) PlaceBid(auctionID, userID string, amount float64) (models.Auction, error) {
	if userID == "" {
		return models.Auction{}, fmt.Errorf("service: place bid: %w", auctionerrors.ErrUnauthenticated)
	}

	bidder, err := s.users.GetByID(userID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: place bid: %w", err)
	}

	now := s.now()
	updated, err := s.store.Update(auctionID, func(a models.Auction) (models.Auction, error) {
		if now.Before(a.StartDate) {
			return models.Auction{}, fmt.Errorf("bid on auction %s: %w", auctionID, auctionerrors.ErrNotStarted)
		}
		if now.After(a.EndDate) {
			return models.Auction{}, fmt.Errorf("bid on auction %s: %w", auctionID, auctionerrors.ErrAlreadyEnded)
		}
		if amount <= a.CurrentPrice {
			return models.Auction{}, fmt.Errorf("bid on auction %s: %w - current price is %.2f", auctionID, auctionerrors.ErrBidTooLow, a.CurrentPrice)
		}
		if bidder.UserID == a.SellerID {
			return models.Auction{}, fmt.Errorf("bid on auction %s: %w", auctionID, auctionerrors.ErrSelfBid)
		}

		a.Bids = append(a.Bids, models.Bid{
			BidID:     utils.GenerateID(),
			UserID:    bidder.UserID,
			UserName:  bidder.Name,
			Amount:    amount,
			CreatedAt: now,
		})
		a.CurrentPrice = amount
		return a, nil
	})
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to place bid on auction %s by user %s: %w", auctionID, userID, err)
	}

	return updated, nil
}

// CreateAuction validates form input and creates a new listing starting now.
func (s *AuctionService) CreateAuction(form models.AuctionForm, sellerID string) (models.Auction, error) {
	if sellerID == "" {
		return models.Auction{}, fmt.Errorf("service: create auction: %w", auctionerrors.ErrUnauthenticated)
	}

	seller, err := s.users.GetByID(sellerID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}

	if err := validateForm(form); err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}

	imageURL := form.ImageURL
	if imageURL == "" {
		imageURL = defaultImageURL
	}

	now := s.now()
	endDate := now.Add(time.Duration(form.DurationHours * float64(time.Hour)))
	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         strings.TrimSpace(form.Title),
		Description:   strings.TrimSpace(form.Description),
		ImageURL:      imageURL,
		Category:      form.Category,
		StartingPrice: form.StartingPrice,
		CurrentPrice:  form.StartingPrice,
		StartDate:     now,
		EndDate:       endDate,
		SellerID:      seller.UserID,
		SellerName:    seller.Name,
		Bids:          []models.Bid{},
		Status:        models.ResolveStatus(now, endDate, now),
	}

	s.store.Insert(auction)
	return auction, nil
}

// validateForm checks creation input; the first failing field wins so the
// caller gets one specific message.
func validateForm(form models.AuctionForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return fmt.Errorf("%w - title is required", auctionerrors.ErrInvalidForm)
	}
	if strings.TrimSpace(form.Description) == "" {
		return fmt.Errorf("%w - description is required", auctionerrors.ErrInvalidForm)
	}
	if form.StartingPrice <= 0 {
		return fmt.Errorf("%w - starting price must be positive", auctionerrors.ErrInvalidForm)
	}
	if form.DurationHours <= 0 {
		return fmt.Errorf("%w - duration must be positive", auctionerrors.ErrInvalidForm)
	}
	return nil
}

// GetAuctions returns all auctions, status-refreshed, newest first.
func (s *AuctionService) GetAuctions() []models.Auction {
	return s.store.GetAll()
}

// GetAuctionByID returns a single auction.
func (s *AuctionService) GetAuctionByID(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotFound)
	}

	auction, err := s.store.GetByID(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// GetAuctionsBySeller returns the auctions a user has created.
func (s *AuctionService) GetAuctionsBySeller(sellerID string) ([]models.Auction, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: list auctions by seller: %w", auctionerrors.ErrUnauthenticated)
	}
	return s.store.GetBySeller(sellerID), nil
}

// GetAuctionsByBidder returns the auctions a user has placed bids on.
func (s *AuctionService) GetAuctionsByBidder(userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: list auctions by bidder: %w", auctionerrors.ErrUnauthenticated)
	}
	return s.store.GetByBidder(userID), nil
}
