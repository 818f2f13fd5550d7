package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUnknownUser     = errors.New("unknown user")
)

// business rule errors
var (
	ErrNotStarted      = errors.New("auction has not started yet")
	ErrAlreadyEnded    = errors.New("auction has already ended")
	ErrBidTooLow       = errors.New("bid must be higher than current price")
	ErrSelfBid         = errors.New("seller cannot bid on own auction")
	ErrUnauthenticated = errors.New("no acting user")
	ErrInvalidForm     = errors.New("invalid auction details")
)
