package models

import "time"

// BookingState is a step of the live booking flow.
type BookingState string

const (
	StateIdle            BookingState = "idle"
	StateSessionCreating BookingState = "sessionCreating"
	StatePricingLoading  BookingState = "pricingLoading"
	StatePricingReady    BookingState = "pricingReady"
	StateReserving       BookingState = "reserving"
	StateReserved        BookingState = "reserved"
	StateFailed          BookingState = "failed"
)

// Passengers is the party a booking session prices for.
type Passengers struct {
	Adults    int   `json:"adults"`
	Children  int   `json:"children"`
	ChildAges []int `json:"childAges,omitempty"`
}

// Reservation is the outcome of a successful select-cabin call.
type Reservation struct {
	CabinCode  string    `json:"cabinCode"`
	ResultNo   string    `json:"resultNo"`
	GradeNo    string    `json:"gradeNo"`
	RateCode   string    `json:"rateCode"`
	BookingRef string    `json:"bookingRef,omitempty"`
	ReservedAt time.Time `json:"reservedAt"`
}

// BookingSession holds the live booking flow between page requests.
type BookingSession struct {
	ID               string         `json:"sessionId"`
	BackendSessionID string         `json:"backendSessionId,omitempty"`
	CruiseID         int            `json:"cruiseId"`
	CruiseLineID     int            `json:"cruiseLineId"`
	Category         CabinCategory  `json:"category"`
	Passengers       Passengers     `json:"passengers"`
	State            BookingState   `json:"state"`
	SelectedRateCode string         `json:"selectedRateCode,omitempty"`
	Cabins           []LiveCabin    `json:"cabins,omitempty"`
	RateCodes        []RateCodeInfo `json:"rateCodes,omitempty"`
	Reservation      *Reservation   `json:"reservation,omitempty"`
	Hold             bool           `json:"isHold"`
	LastError        string         `json:"lastError,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// PricedCabin pairs a live cabin with the price chosen for it.
type PricedCabin struct {
	Cabin     LiveCabin     `json:"cabin"`
	Selection RateSelection `json:"selection"`
}

// BookingResponse is returned by every booking session endpoint.
type BookingResponse struct {
	Session BookingSession `json:"session"`
	Cabins  []PricedCabin  `json:"cabins,omitempty"`
}
