package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Every rejection reason gets its own specific message; the generic 500 is
// reserved for genuinely unexpected failures.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrNotStarted):
		return http.StatusConflict, "auction has not started yet"
	case errors.Is(err, auctionerrors.ErrAlreadyEnded):
		return http.StatusConflict, "auction has already ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid must be higher than current price"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "you cannot bid on your own auction"
	case errors.Is(err, auctionerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "you must be logged in"
	case errors.Is(err, auctionerrors.ErrUnknownUser):
		return http.StatusUnauthorized, "unknown user"
	case errors.Is(err, auctionerrors.ErrInvalidForm):
		return http.StatusBadRequest, "invalid auction details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
