package server

import (
	auction "auction-marketplace/internal/auctionService"
	handler "auction-marketplace/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. The feed may be
// nil when the simulator is disabled; the events route is skipped then.
func SetupRouter(auctionService *auction.AuctionService, feed handler.BidFeed) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", auctionHandler.GetAuctionsBySellerHandler)
		users.GET("/:user_id/bids", auctionHandler.GetAuctionsByBidderHandler)
	}

	if feed != nil {
		router.GET("/events", handler.NewEventsHandler(feed).StreamHandler)
	}

	return router
}
