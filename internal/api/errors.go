package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/favouritesss/1000-Pips-Climber-System/internal/ledger"
	"github.com/favouritesss/1000-Pips-Climber-System/internal/service"
)

// errStatus maps ledger and service errors onto HTTP statuses
func errStatus(err error) int {
	var rangeErr *service.AmountRangeError
	switch {
	case errors.Is(err, ledger.ErrUserNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrTxNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidStatus),
		errors.As(err, &rangeErr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTxResolved):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response. Business-rule failures surface with their
// message; anything unexpected is logged and returned as an opaque 500.
func fail(c *gin.Context, err error) {
	status := errStatus(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("Unexpected failure") // Log full detail server-side
		c.JSON(status, gin.H{"error": "Server error"})    // Opaque message to the caller
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
