package models

import "time"

// QuoteDiscounts lists the discount qualifiers a customer claimed.
type QuoteDiscounts struct {
	Senior           bool   `json:"senior" bson:"senior"`
	Military         bool   `json:"military" bson:"military"`
	PastGuest        bool   `json:"pastGuest" bson:"pastGuest"`
	PastGuestNumber  string `json:"pastGuestNumber,omitempty" bson:"pastGuestNumber,omitempty"`
	StateOfResidence string `json:"stateOfResidence,omitempty" bson:"stateOfResidence,omitempty"`
}

// QuoteRequest is a "get a quote" submission for a cruise cabin.
type QuoteRequest struct {
	ID            string         `json:"id" bson:"id"`
	Reference     string         `json:"reference" bson:"reference"`
	Email         string         `json:"email" bson:"email"`
	CruiseID      int            `json:"cruiseId" bson:"cruiseId"`
	CruiseName    string         `json:"cruiseName" bson:"cruiseName"`
	ShipName      string         `json:"shipName" bson:"shipName"`
	DepartureDate string         `json:"departureDate" bson:"departureDate"`
	Category      CabinCategory  `json:"cabinType" bson:"cabinType"`
	CabinPrice    *float64       `json:"cabinPrice,omitempty" bson:"cabinPrice,omitempty"`
	Adults        int            `json:"adults" bson:"adults"`
	Children      int            `json:"children" bson:"children"`
	ChildAges     []int          `json:"childAges,omitempty" bson:"childAges,omitempty"`
	Discounts     QuoteDiscounts `json:"discounts" bson:"discounts"`
	Notes         string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
}

// QuoteReceipt is returned to the customer after a submission.
type QuoteReceipt struct {
	Reference          string `json:"reference"`
	NotificationQueued bool   `json:"notificationQueued"`
}

// QuoteNotifyPayload is the queued notification task body.
type QuoteNotifyPayload struct {
	QuoteID string `json:"quoteId"`
}
