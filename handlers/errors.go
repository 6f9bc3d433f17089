package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zipsea/database/repository"
	"zipsea/services/backend"
	"zipsea/services/booking"
	"zipsea/services/content"
	"zipsea/services/cruise"
	"zipsea/services/quote"
	"zipsea/utils"
)

// handleError maps service errors to an HTTP status and envelope.
func handleError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err), zap.String("path", c.Request.URL.Path))
	}
	utils.JSONError(c, status, message, err.Error())
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, cruise.ErrNotFound),
		errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound, "Cruise not found"
	case errors.Is(err, booking.ErrSessionNotFound):
		return http.StatusNotFound, "Booking session not found or expired"
	case errors.Is(err, content.ErrSectionNotFound):
		return http.StatusNotFound, "Page not found"
	case errors.Is(err, repository.ErrQuoteNotFound):
		return http.StatusNotFound, "Quote not found"
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrConcurrentUpdate):
		return http.StatusConflict, "Another booking action is in progress"
	case errors.Is(err, booking.ErrNotEligible):
		return http.StatusForbidden, "Live booking is not available for this cruise"
	case errors.Is(err, booking.ErrInvalidInput),
		errors.Is(err, booking.ErrUnknownRateCode),
		errors.Is(err, booking.ErrCabinNotFound),
		errors.Is(err, quote.ErrInvalidQuote):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, booking.ErrActionFailed):
		return http.StatusBadGateway, "Booking action failed, please try again"
	case errors.Is(err, backend.ErrUpstream):
		return http.StatusBadGateway, "Cruise data is temporarily unavailable"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

func bindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
}
