package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Pages
	HomePage    gin.HandlerFunc
	ListingPage gin.HandlerFunc
	CruisePage  gin.HandlerFunc
	LegalPage   gin.HandlerFunc
	NotFound    gin.HandlerFunc

	// Cruise API
	GetCruise   gin.HandlerFunc
	ListCruises gin.HandlerFunc
	ListLegal   gin.HandlerFunc

	// Quote endpoints
	SubmitQuote gin.HandlerFunc

	// Booking endpoints
	StartBookingSession gin.HandlerFunc
	GetBookingSession   gin.HandlerFunc
	UpdatePassengers    gin.HandlerFunc
	SelectRateCode      gin.HandlerFunc
	ReserveCabin        gin.HandlerFunc
	UpdateBookingFlag   gin.HandlerFunc
	CancelBooking       gin.HandlerFunc

	// Admin endpoints
	ListQuotes       gin.HandlerFunc
	GetQuote         gin.HandlerFunc
	InvalidateCruise gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires each handler method into the bundle.
func NewHandlerBundle(ch *CruiseHandler, bh *BookingHandler, qh *QuoteHandler, lh *LegalHandler, ah *AdminHandler) *HandlerBundle {
	return &HandlerBundle{
		HomePage:    ch.HomeHandler,
		ListingPage: ch.ListingPageHandler,
		CruisePage:  ch.CruisePageHandler,
		LegalPage:   lh.LegalPageHandler,
		NotFound:    NotFoundHandler,

		GetCruise:   ch.GetCruiseHandler,
		ListCruises: ch.ListCruisesHandler,
		ListLegal:   lh.GetLegalSectionsHandler,

		SubmitQuote: qh.SubmitQuoteHandler,

		StartBookingSession: bh.StartSession,
		GetBookingSession:   bh.GetSession,
		UpdatePassengers:    bh.UpdatePassengers,
		SelectRateCode:      bh.SelectRateCode,
		ReserveCabin:        bh.Reserve,
		UpdateBookingFlag:   bh.UpdateFlag,
		CancelBooking:       bh.CancelSession,

		ListQuotes:       ah.ListQuotesHandler,
		GetQuote:         ah.GetQuoteHandler,
		InvalidateCruise: ah.InvalidateCruiseHandler,

		Health: HealthHandler,
	}
}
