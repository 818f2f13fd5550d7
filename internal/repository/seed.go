package repository

import (
	"time"

	model "auction-marketplace/internal/models"
)

// SeedUsers returns the sample identities installed at startup.
func SeedUsers() []model.User {
	return []model.User{
		{UserID: "1", Name: "John Doe", Email: "john@example.com"},
		{UserID: "2", Name: "Jane Smith", Email: "jane@example.com"},
		{UserID: "3", Name: "Alice Johnson", Email: "alice@example.com"},
	}
}

// SeedAuctions returns the sample auction catalog relative to now: a mix of
// active listings with and without bids and one already-ended listing, so
// every status and query path is exercised out of the box.
func SeedAuctions(now time.Time) []model.Auction {
	return []model.Auction{
		{
			AuctionID:     "1",
			Title:         "Vintage Rolex Watch",
			Description:   "A beautiful vintage Rolex watch in excellent condition. This rare timepiece features a gold bezel and leather strap.",
			ImageURL:      "https://images.unsplash.com/photo-1547996160-81dfa63595aa?auto=format&fit=crop&q=80&w=500",
			Category:      "Jewelry",
			StartingPrice: 1000,
			CurrentPrice:  1250,
			StartDate:     now.Add(-2 * 24 * time.Hour),
			EndDate:       now.Add(2 * 24 * time.Hour),
			SellerID:      "1",
			SellerName:    "John Doe",
			Bids: []model.Bid{
				{BidID: "b1", UserID: "2", UserName: "Jane Smith", Amount: 1050, CreatedAt: now.Add(-24 * time.Hour)},
				{BidID: "b2", UserID: "3", UserName: "Alice Johnson", Amount: 1250, CreatedAt: now.Add(-12 * time.Hour)},
			},
			Status: model.StatusActive,
		},
		{
			AuctionID:     "2",
			Title:         "Modern Art Painting",
			Description:   "Original modern art painting by emerging artist. Abstract design with vibrant colors on canvas.",
			ImageURL:      "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?auto=format&fit=crop&q=80&w=500",
			Category:      "Art",
			StartingPrice: 500,
			CurrentPrice:  750,
			StartDate:     now.Add(-3 * 24 * time.Hour),
			EndDate:       now.Add(24 * time.Hour),
			SellerID:      "3",
			SellerName:    "Alice Johnson",
			Bids: []model.Bid{
				{BidID: "b3", UserID: "1", UserName: "John Doe", Amount: 600, CreatedAt: now.Add(-2 * 24 * time.Hour)},
				{BidID: "b4", UserID: "2", UserName: "Jane Smith", Amount: 750, CreatedAt: now.Add(-18 * time.Hour)},
			},
			Status: model.StatusActive,
		},
		{
			AuctionID:     "3",
			Title:         "Antique Oak Desk",
			Description:   "Beautiful antique oak writing desk from the 19th century. Perfect condition with original brass handles.",
			ImageURL:      "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?auto=format&fit=crop&q=80&w=500",
			Category:      "Furniture",
			StartingPrice: 800,
			CurrentPrice:  800,
			StartDate:     now.Add(-24 * time.Hour),
			EndDate:       now.Add(6 * 24 * time.Hour),
			SellerID:      "2",
			SellerName:    "Jane Smith",
			Bids:          []model.Bid{},
			Status:        model.StatusActive,
		},
		{
			AuctionID:     "4",
			Title:         "Vintage Camera Collection",
			Description:   "Collection of 5 vintage film cameras from the 1960s and 1970s. All in working condition.",
			ImageURL:      "https://images.unsplash.com/photo-1452780212940-6f5c0d14d848?auto=format&fit=crop&q=80&w=500",
			Category:      "Electronics",
			StartingPrice: 350,
			CurrentPrice:  720,
			StartDate:     now.Add(-5 * 24 * time.Hour),
			EndDate:       now.Add(12 * time.Hour),
			SellerID:      "1",
			SellerName:    "John Doe",
			Bids: []model.Bid{
				{BidID: "b5", UserID: "3", UserName: "Alice Johnson", Amount: 450, CreatedAt: now.Add(-4 * 24 * time.Hour)},
				{BidID: "b6", UserID: "2", UserName: "Jane Smith", Amount: 550, CreatedAt: now.Add(-3 * 24 * time.Hour)},
				{BidID: "b7", UserID: "3", UserName: "Alice Johnson", Amount: 720, CreatedAt: now.Add(-24 * time.Hour)},
			},
			Status: model.StatusActive,
		},
		{
			AuctionID:     "5",
			Title:         "Limited Edition Sneakers",
			Description:   "Limited edition designer sneakers, never worn. Size 10. Comes with original box and authenticity certificate.",
			ImageURL:      "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&q=80&w=500",
			Category:      "Fashion",
			StartingPrice: 200,
			CurrentPrice:  425,
			StartDate:     now.Add(-4 * 24 * time.Hour),
			EndDate:       now.Add(-6 * time.Hour),
			SellerID:      "3",
			SellerName:    "Alice Johnson",
			Bids: []model.Bid{
				{BidID: "b8", UserID: "1", UserName: "John Doe", Amount: 290, CreatedAt: now.Add(-3 * 24 * time.Hour)},
				{BidID: "b9", UserID: "2", UserName: "Jane Smith", Amount: 350, CreatedAt: now.Add(-2 * 24 * time.Hour)},
				{BidID: "b10", UserID: "1", UserName: "John Doe", Amount: 425, CreatedAt: now.Add(-24 * time.Hour)},
			},
			Status: model.StatusEnded,
		},
	}
}

// Prepopulate installs the sample users and auctions. Seed auctions are
// appended oldest-last so the catalog keeps its listing order.
func Prepopulate(store *MemoryStore, directory *MemoryDirectory, now time.Time) {
	for _, u := range SeedUsers() {
		directory.AddUser(u)
	}

	seeds := SeedAuctions(now)
	// Insert prepends, so walk the catalog in reverse to preserve order.
	for i := len(seeds) - 1; i >= 0; i-- {
		store.Insert(seeds[i])
	}
}
