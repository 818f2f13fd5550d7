package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines the authoritative auction storage interface. It is the
// only place mutation happens; all callers receive snapshot copies.
type AuctionStore interface {
	GetAll() []model.Auction
	GetByID(auctionID string) (model.Auction, error)
	Insert(auction model.Auction)
	Replace(auctionID string, updated model.Auction) error
	Update(auctionID string, fn func(model.Auction) (model.Auction, error)) (model.Auction, error)
	GetBySeller(sellerID string) []model.Auction
	GetByBidder(userID string) []model.Auction
}

// UserDirectory exposes the known identities for attribution and for the
// simulator's candidate bidder pool. Read-only to the core.
type UserDirectory interface {
	GetByID(userID string) (model.User, error)
	GetByEmail(email string) (model.User, error)
	All() []model.User
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// A store-wide RWMutex guards the maps; a per-auction mutex serializes
// read-modify-write cycles so two near-simultaneous bids can never both be
// validated against the same stale current price.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]*model.Auction // key: auctionID
	order    []string                  // auctionIDs, newest first
	locks    map[string]*sync.Mutex    // key: auctionID, guards Update cycles
	now      func() time.Time
}

// NewMemoryStore creates a new in-memory store using the wall clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(func() time.Time { return time.Now().UTC() })
}

// NewMemoryStoreWithClock creates a store with an injected clock so tests can
// cross status boundaries deterministically.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]*model.Auction),
		locks:    make(map[string]*sync.Mutex),
		now:      now,
	}
}

// snapshot deep-copies an auction and refreshes its status from the clock.
// Status is derived state; a cached value must never outlive the read.
func (s *MemoryStore) snapshot(a *model.Auction) model.Auction {
	c := a.Clone()
	c.Status = model.ResolveStatus(c.StartDate, c.EndDate, s.now())
	return c
}

// GetAll returns status-refreshed snapshots of every auction, newest first.
func (s *MemoryStore) GetAll() []model.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]model.Auction, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.snapshot(s.auctions[id]))
	}
	return all
}

// GetByID returns a status-refreshed snapshot of one auction.
func (s *MemoryStore) GetByID(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return s.snapshot(a), nil
}

// Insert adds an auction at the head of the listing order.
func (s *MemoryStore) Insert(auction model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := auction.Clone()
	s.auctions[auction.AuctionID] = &stored
	s.order = append([]string{auction.AuctionID}, s.order...)
	if _, ok := s.locks[auction.AuctionID]; !ok {
		s.locks[auction.AuctionID] = &sync.Mutex{}
	}
}

// Replace atomically swaps the full record for an existing auction.
func (s *MemoryStore) Replace(auctionID string, updated model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return fmt.Errorf("replace auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	stored := updated.Clone()
	s.auctions[auctionID] = &stored
	return nil
}

// Update runs fn against the latest committed state of one auction while
// holding that auction's mutex, then commits fn's result. This is the
// critical section for bid application: fn always observes the current
// price as of the commit, never a stale snapshot.
func (s *MemoryStore) Update(auctionID string, fn func(model.Auction) (model.Auction, error)) (model.Auction, error) {
	s.mu.RLock()
	lock, ok := s.locks[auctionID]
	s.mu.RUnlock()
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	lock.Lock()
	defer lock.Unlock()

	current, err := s.GetByID(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	updated, err := fn(current)
	if err != nil {
		return model.Auction{}, err
	}

	if err := s.Replace(auctionID, updated); err != nil {
		return model.Auction{}, err
	}
	return s.GetByID(auctionID)
}

// GetBySeller returns all auctions created by a seller, in listing order.
func (s *MemoryStore) GetBySeller(sellerID string) []model.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var auctions []model.Auction
	for _, id := range s.order {
		a := s.auctions[id]
		if a.SellerID == sellerID {
			auctions = append(auctions, s.snapshot(a))
		}
	}
	return auctions
}

// GetByBidder returns all auctions the user has placed at least one bid on.
func (s *MemoryStore) GetByBidder(userID string) []model.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var auctions []model.Auction
	for _, id := range s.order {
		a := s.auctions[id]
		for _, b := range a.Bids {
			if b.UserID == userID {
				auctions = append(auctions, s.snapshot(a))
				break
			}
		}
	}
	return auctions
}

// MemoryDirectory is a concurrency-safe in-memory UserDirectory.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]model.User // key: userID
	order []string              // userIDs in registration order
}

// NewMemoryDirectory creates an empty user directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		users: make(map[string]model.User),
	}
}

// AddUser registers an identity. Intended for startup seeding and tests.
func (d *MemoryDirectory) AddUser(user model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[user.UserID]; !ok {
		d.order = append(d.order, user.UserID)
	}
	d.users[user.UserID] = user
}

// GetByID returns the identity for a user id.
func (d *MemoryDirectory) GetByID(userID string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUnknownUser)
	}
	return user, nil
}

// GetByEmail returns the identity matching an email, case-insensitively.
func (d *MemoryDirectory) GetByEmail(email string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range d.order {
		if strings.EqualFold(d.users[id].Email, email) {
			return d.users[id], nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUnknownUser)
}

// All returns every known identity in registration order.
func (d *MemoryDirectory) All() []model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]model.User, 0, len(d.order))
	for _, id := range d.order {
		users = append(users, d.users[id])
	}
	return users
}
