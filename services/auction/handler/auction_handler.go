package handler

import (
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_handler.go -package=handler

type AuctionServiceInterface interface {
	PlaceBid(auctionID, userID string, amount float64) (model.Auction, error)
	CreateAuction(form model.AuctionForm, sellerID string) (model.Auction, error)
	GetAuctions() []model.Auction
	GetAuctionByID(auctionID string) (model.Auction, error)
	GetAuctionsBySeller(sellerID string) ([]model.Auction, error)
	GetAuctionsByBidder(userID string) ([]model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auction, err := h.service.PlaceBid(auctionID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(auction), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":    auction.AuctionID,
		"user_id":       req.UserID,
		"amount":        req.Amount,
		"current_price": auction.CurrentPrice,
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	form := model.AuctionForm{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		StartingPrice: req.StartingPrice,
		DurationHours: req.DurationHours,
	}

	auction, err := h.service.CreateAuction(form, req.SellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler":   "CreateAuctionHandler",
			"seller_id": req.SellerID,
			"title":     req.Title,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  auction.SellerID,
		"end_date":   auction.EndDate,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions := h.service.GetAuctions()

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionListResponse(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.GetAuctionByID(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"status":     auction.Status,
	})
}

// GetAuctionsBySellerHandler handles GET /users/:user_id/auctions
func (h *AuctionHandler) GetAuctionsBySellerHandler(c *gin.Context) {
	userID := c.Param("user_id")

	auctions, err := h.service.GetAuctionsBySeller(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionsBySellerHandler: error retrieving auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionListResponse(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsBySellerHandler", "auctions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}

// GetAuctionsByBidderHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetAuctionsByBidderHandler(c *gin.Context) {
	userID := c.Param("user_id")

	auctions, err := h.service.GetAuctionsByBidder(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionsByBidderHandler: error retrieving auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionListResponse(auctions), "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsByBidderHandler", "auctions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}
