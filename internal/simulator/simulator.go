package simulator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// AuctionEngine is the slice of the auction service the simulator needs.
// Synthetic bids go through the same validated path as user bids.
type AuctionEngine interface {
	GetAuctions() []models.Auction
	PlaceBid(auctionID, userID string, amount float64) (models.Auction, error)
}

// Handler receives the updated auction after a synthetic bid commits.
// Handlers run on the ticker goroutine and must not block it.
type Handler func(models.Auction)

// Simulator periodically injects synthetic competitor bids into random
// active auctions to emulate concurrent market activity.
type Simulator struct {
	engine   AuctionEngine
	users    repository.UserDirectory
	interval time.Duration
	rng      *rand.Rand

	mu      sync.Mutex // guards the lifecycle fields below
	running bool
	stop    chan struct{}
	done    chan struct{}

	subMu    sync.Mutex // guards subscribers and the excluded bidder
	excluded string     // live user, excluded from candidate bidders
	subs     map[int]Handler
	nextSub  int
}

// New creates a simulator ticking at the given interval.
func New(engine AuctionEngine, users repository.UserDirectory, interval time.Duration) *Simulator {
	return NewWithRand(engine, users, interval, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a simulator with an injected random source for
// deterministic tests.
func NewWithRand(engine AuctionEngine, users repository.UserDirectory, interval time.Duration, rng *rand.Rand) *Simulator {
	return &Simulator{
		engine:   engine,
		users:    users,
		interval: interval,
		rng:      rng,
		subs:     make(map[int]Handler),
	}
}

// Start launches the background bidding loop. A prior running instance is
// stopped first, so at most one loop ever runs.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true
	go s.loop(s.stop, s.done)
}

// Stop halts the loop and releases the timer. Safe to call repeatedly or
// before Start. A tick in flight completes and still notifies subscribers.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Simulator) stopLocked() {
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	s.running = false
}

func (s *Simulator) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one simulation step: pick a random active auction and a
// random eligible bidder, raise the current price by 5-15%, and place the
// bid through the validated path. No active auction or no eligible bidder
// is expected steady state and stays silent; a rejected synthetic bid is an
// anomaly, since a legally constructed bid should always pass validation.
func (s *Simulator) Tick() {
	var active []models.Auction
	for _, a := range s.engine.GetAuctions() {
		if a.Status == models.StatusActive {
			active = append(active, a)
		}
	}
	if len(active) == 0 {
		return
	}
	auction := active[s.rng.Intn(len(active))]

	s.subMu.Lock()
	excluded := s.excluded
	s.subMu.Unlock()

	var candidates []models.User
	for _, u := range s.users.All() {
		if u.UserID != auction.SellerID && u.UserID != excluded {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return
	}
	bidder := candidates[s.rng.Intn(len(candidates))]

	raise := auction.CurrentPrice * (0.05 + 0.10*s.rng.Float64())
	amount := math.Round(auction.CurrentPrice + raise)
	if amount <= auction.CurrentPrice {
		// rounding collapsed the raise on a small price
		amount = auction.CurrentPrice + 1
	}

	updated, err := s.engine.PlaceBid(auction.AuctionID, bidder.UserID, amount)
	if err != nil {
		utils.Error("simulator: synthetic bid rejected", map[string]any{
			"auction_id": auction.AuctionID,
			"user_id":    bidder.UserID,
			"amount":     amount,
			"error":      err.Error(),
		})
		return
	}

	s.notify(updated)
}

// SetExcludedBidder records the live user's identity so the simulator never
// bids on their behalf.
func (s *Simulator) SetExcludedBidder(userID string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.excluded = userID
}

// Subscribe registers a handler for committed synthetic bids and returns a
// token for Unsubscribe.
func (s *Simulator) Subscribe(handler func(models.Auction)) int {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSub++
	s.subs[s.nextSub] = handler
	return s.nextSub
}

// Unsubscribe removes a handler. Unknown tokens are a no-op.
func (s *Simulator) Unsubscribe(token int) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	delete(s.subs, token)
}

func (s *Simulator) notify(auction models.Auction) {
	s.subMu.Lock()
	handlers := make([]Handler, 0, len(s.subs))
	for _, h := range s.subs {
		handlers = append(handlers, h)
	}
	s.subMu.Unlock()

	for _, h := range handlers {
		h(auction)
	}
}
