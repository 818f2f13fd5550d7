package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() *MemoryStore {
	return NewMemoryStoreWithClock(func() time.Time { return testNow })
}

func activeAuction(id string) model.Auction {
	return model.Auction{
		AuctionID:     id,
		Title:         "title-" + id,
		Description:   "description-" + id,
		StartingPrice: 100,
		CurrentPrice:  100,
		StartDate:     testNow.Add(-time.Hour),
		EndDate:       testNow.Add(time.Hour),
		SellerID:      "seller1",
		SellerName:    "Seller One",
		Bids:          []model.Bid{},
	}
}

// Tests Insert and GetAll listing order
func TestMemoryStore_InsertOrdering(t *testing.T) {
	store := newTestStore()

	store.Insert(activeAuction("a1"))
	store.Insert(activeAuction("a2"))
	store.Insert(activeAuction("a3"))

	all := store.GetAll()
	require.Len(t, all, 3)

	// newest first
	require.Equal(t, "a3", all[0].AuctionID)
	require.Equal(t, "a2", all[1].AuctionID)
	require.Equal(t, "a1", all[2].AuctionID)
}

// Tests that returned snapshots cannot mutate store state
func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	store := newTestStore()
	a := activeAuction("a1")
	a.Bids = []model.Bid{{BidID: "b1", UserID: "u2", Amount: 120, CreatedAt: testNow}}
	a.CurrentPrice = 120
	store.Insert(a)

	got, err := store.GetByID("a1")
	require.NoError(t, err)

	got.Bids[0].Amount = 999
	got.Bids = append(got.Bids, model.Bid{BidID: "bx", Amount: 1000})
	got.CurrentPrice = 1000

	fresh, err := store.GetByID("a1")
	require.NoError(t, err)
	require.Equal(t, 120.0, fresh.CurrentPrice)
	require.Len(t, fresh.Bids, 1)
	require.Equal(t, 120.0, fresh.Bids[0].Amount)
}

// Tests that every read refreshes status from the clock
func TestMemoryStore_StatusRefreshedOnRead(t *testing.T) {
	clock := testNow
	store := NewMemoryStoreWithClock(func() time.Time { return clock })

	a := activeAuction("a1")
	a.Status = model.StatusUpcoming // stale stored value must not survive a read
	store.Insert(a)

	got, err := store.GetByID("a1")
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, got.Status)

	// advance the wall clock past the end date
	clock = testNow.Add(2 * time.Hour)

	all := store.GetAll()
	require.Len(t, all, 1)
	require.Equal(t, model.StatusEnded, all[0].Status)
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := newTestStore()

	_, err := store.GetByID("missing")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

func TestMemoryStore_Replace(t *testing.T) {
	store := newTestStore()
	store.Insert(activeAuction("a1"))

	updated := activeAuction("a1")
	updated.CurrentPrice = 250
	require.NoError(t, store.Replace("a1", updated))

	got, err := store.GetByID("a1")
	require.NoError(t, err)
	require.Equal(t, 250.0, got.CurrentPrice)

	err = store.Replace("missing", updated)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

// Tests Update commits fn's result atomically and surfaces fn's error
func TestMemoryStore_Update(t *testing.T) {
	store := newTestStore()
	store.Insert(activeAuction("a1"))

	updated, err := store.Update("a1", func(a model.Auction) (model.Auction, error) {
		a.CurrentPrice = 150
		a.Bids = append(a.Bids, model.Bid{BidID: "b1", UserID: "u2", Amount: 150, CreatedAt: testNow})
		return a, nil
	})
	require.NoError(t, err)
	require.Equal(t, 150.0, updated.CurrentPrice)
	require.Len(t, updated.Bids, 1)

	// rejection commits nothing
	rejection := errors.New("bid rejected")
	_, err = store.Update("a1", func(a model.Auction) (model.Auction, error) {
		return model.Auction{}, rejection
	})
	require.ErrorIs(t, err, rejection)

	got, err := store.GetByID("a1")
	require.NoError(t, err)
	require.Equal(t, 150.0, got.CurrentPrice)
	require.Len(t, got.Bids, 1)

	_, err = store.Update("missing", func(a model.Auction) (model.Auction, error) { return a, nil })
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

// Tests that concurrent Update cycles on one auction are serialized: every
// accepted amount must strictly exceed the committed price it was checked
// against, so the bid sequence ends strictly increasing with no lost updates.
func TestMemoryStore_Update_SerializesPerAuction(t *testing.T) {
	store := newTestStore()
	store.Insert(activeAuction("a1"))

	const bidders = 50
	var wg sync.WaitGroup
	errs := make(chan error, bidders)
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// every bidder raises whatever price it observes inside the
			// critical section, so all 50 bids must be accepted
			_, err := store.Update("a1", func(a model.Auction) (model.Auction, error) {
				amount := a.CurrentPrice + 1
				a.Bids = append(a.Bids, model.Bid{
					BidID:     fmt.Sprintf("b%d", n),
					UserID:    fmt.Sprintf("u%d", n),
					Amount:    amount,
					CreatedAt: testNow,
				})
				a.CurrentPrice = amount
				return a, nil
			})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := store.GetByID("a1")
	require.NoError(t, err)
	require.Len(t, got.Bids, bidders)
	require.Equal(t, 100.0+bidders, got.CurrentPrice)

	prev := 100.0
	for _, b := range got.Bids {
		require.Greater(t, b.Amount, prev)
		prev = b.Amount
	}
	require.Equal(t, got.Bids[len(got.Bids)-1].Amount, got.CurrentPrice)
}

func TestMemoryStore_GetBySeller(t *testing.T) {
	store := newTestStore()
	a1 := activeAuction("a1")
	a2 := activeAuction("a2")
	a2.SellerID = "seller2"
	a3 := activeAuction("a3")
	store.Insert(a1)
	store.Insert(a2)
	store.Insert(a3)

	mine := store.GetBySeller("seller1")
	require.Len(t, mine, 2)
	require.Equal(t, "a3", mine[0].AuctionID)
	require.Equal(t, "a1", mine[1].AuctionID)

	require.Empty(t, store.GetBySeller("nobody"))
}

func TestMemoryStore_GetByBidder(t *testing.T) {
	store := newTestStore()
	a1 := activeAuction("a1")
	a1.Bids = []model.Bid{{BidID: "b1", UserID: "u2", Amount: 110, CreatedAt: testNow}}
	a2 := activeAuction("a2")
	a3 := activeAuction("a3")
	a3.Bids = []model.Bid{
		{BidID: "b2", UserID: "u3", Amount: 105, CreatedAt: testNow},
		{BidID: "b3", UserID: "u2", Amount: 115, CreatedAt: testNow},
	}
	store.Insert(a1)
	store.Insert(a2)
	store.Insert(a3)

	bidOn := store.GetByBidder("u2")
	require.Len(t, bidOn, 2)
	require.Equal(t, "a3", bidOn[0].AuctionID)
	require.Equal(t, "a1", bidOn[1].AuctionID)

	require.Empty(t, store.GetByBidder("u9"))
}

// Directory tests

func TestMemoryDirectory(t *testing.T) {
	dir := NewMemoryDirectory()
	dir.AddUser(model.User{UserID: "1", Name: "John Doe", Email: "john@example.com"})
	dir.AddUser(model.User{UserID: "2", Name: "Jane Smith", Email: "jane@example.com"})

	user, err := dir.GetByID("1")
	require.NoError(t, err)
	require.Equal(t, "John Doe", user.Name)

	_, err = dir.GetByID("missing")
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownUser))

	user, err = dir.GetByEmail("JANE@example.COM")
	require.NoError(t, err)
	require.Equal(t, "2", user.UserID)

	_, err = dir.GetByEmail("nobody@example.com")
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownUser))

	all := dir.All()
	require.Len(t, all, 2)
	require.Equal(t, "1", all[0].UserID)
	require.Equal(t, "2", all[1].UserID)
}

// Tests the seed catalog invariants used by the rest of the system
func TestSeedData(t *testing.T) {
	store := newTestStore()
	dir := NewMemoryDirectory()
	Prepopulate(store, dir, testNow)

	require.Len(t, dir.All(), 3)

	all := store.GetAll()
	require.Len(t, all, 5)
	// catalog keeps its listing order
	require.Equal(t, "1", all[0].AuctionID)
	require.Equal(t, "5", all[4].AuctionID)

	for _, a := range all {
		if len(a.Bids) == 0 {
			require.Equal(t, a.StartingPrice, a.CurrentPrice)
			continue
		}
		require.Equal(t, a.Bids[len(a.Bids)-1].Amount, a.CurrentPrice)
		prev := a.StartingPrice
		for _, b := range a.Bids {
			require.Greater(t, b.Amount, prev)
			require.NotEqual(t, a.SellerID, b.UserID)
			prev = b.Amount
		}
	}

	// the sneakers auction ended six hours before now
	ended, err := store.GetByID("5")
	require.NoError(t, err)
	require.Equal(t, model.StatusEnded, ended.Status)
}
