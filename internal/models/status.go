package models

import "time"

// AuctionStatus is the derived lifecycle phase of an auction. It is computed
// from the time bounds on every read and never stored as independent truth.
type AuctionStatus string

const (
	StatusUpcoming AuctionStatus = "upcoming"
	StatusActive   AuctionStatus = "active"
	StatusEnded    AuctionStatus = "ended"
)

// ResolveStatus computes the lifecycle status of an auction at the given
// instant. Both bounds are inclusive: an auction is active at exactly
// startDate and at exactly endDate, and ended only strictly after endDate.
func ResolveStatus(startDate, endDate, now time.Time) AuctionStatus {
	switch {
	case now.Before(startDate):
		return StatusUpcoming
	case now.After(endDate):
		return StatusEnded
	default:
		return StatusActive
	}
}
