package handlers

import (
	"strings"

	"zipsea/models"
)

// QuoteBody is the "get a quote" form.
type QuoteBody struct {
	Email         string                `json:"email" binding:"required,email"`
	CruiseID      int                   `json:"cruiseId" binding:"required,gt=0"`
	CruiseName    string                `json:"cruiseName"`
	ShipName      string                `json:"shipName"`
	DepartureDate string                `json:"departureDate"`
	Category      models.CabinCategory  `json:"cabinType" binding:"required"`
	CabinPrice    *float64              `json:"cabinPrice"`
	Adults        int                   `json:"adults" binding:"required,min=1,max=8"`
	Children      int                   `json:"children" binding:"min=0,max=8"`
	ChildAges     []int                 `json:"childAges" binding:"omitempty,dive,min=0,max=17"`
	Discounts     models.QuoteDiscounts `json:"discounts"`
	Notes         string                `json:"notes" binding:"max=2000"`
}

func (b QuoteBody) toModel() models.QuoteRequest {
	return models.QuoteRequest{
		Email:         strings.ToLower(strings.TrimSpace(b.Email)),
		CruiseID:      b.CruiseID,
		CruiseName:    b.CruiseName,
		ShipName:      b.ShipName,
		DepartureDate: b.DepartureDate,
		Category:      b.Category,
		CabinPrice:    b.CabinPrice,
		Adults:        b.Adults,
		Children:      b.Children,
		ChildAges:     b.ChildAges,
		Discounts:     b.Discounts,
		Notes:         b.Notes,
	}
}

type PassengersBody struct {
	Passengers *models.Passengers `json:"passengers"`
}

type RateCodeBody struct {
	RateCode string `json:"rateCode"`
}

type ReserveBody struct {
	ResultNo string `json:"resultNo" binding:"required"`
}

type FlagBody struct {
	Hold *bool `json:"isHold" binding:"required"`
}
