package models

// CabinCategory is the display category shown to customers.
type CabinCategory string

const (
	CategoryInterior  CabinCategory = "interior"
	CategoryOceanview CabinCategory = "oceanview"
	CategoryBalcony   CabinCategory = "balcony"
	CategorySuite     CabinCategory = "suite"
)

// CabinCategories lists the categories in the order they are rendered.
var CabinCategories = []CabinCategory{
	CategoryInterior,
	CategoryOceanview,
	CategoryBalcony,
	CategorySuite,
}

// Valid reports whether c is one of the four known categories.
func (c CabinCategory) Valid() bool {
	switch c {
	case CategoryInterior, CategoryOceanview, CategoryBalcony, CategorySuite:
		return true
	}
	return false
}

// Label is the human readable name of the category.
func (c CabinCategory) Label() string {
	switch c {
	case CategoryInterior:
		return "Interior"
	case CategoryOceanview:
		return "Oceanview"
	case CategoryBalcony:
		return "Balcony"
	case CategorySuite:
		return "Suite"
	}
	return string(c)
}

// CabinType is the cabin type used by the pricing payload.
type CabinType string

const (
	CabinTypeInside  CabinType = "inside"
	CabinTypeOutside CabinType = "outside"
	CabinTypeBalcony CabinType = "balcony"
	CabinTypeSuite   CabinType = "suite"
)

// CruiseSlug is the identity encoded in a cruise page URL.
type CruiseSlug struct {
	ShipNameSlug  string `json:"shipNameSlug"`
	DepartureDate string `json:"departureDate"`
	CruiseID      int    `json:"cruiseId"`
}

// Cruise is the cruise record returned by the backend API. Pricing is only
// present on the comprehensive endpoint.
type Cruise struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug,omitempty"`
	CruiseLineID   int             `json:"cruiseLineId"`
	CruiseLineName string          `json:"cruiseLineName"`
	ShipID         int             `json:"shipId"`
	ShipName       string          `json:"shipName"`
	SailingDate    string          `json:"sailingDate"`
	Nights         int             `json:"nights"`
	EmbarkPort     string          `json:"embarkPortName"`
	DisembarkPort  string          `json:"disembarkPortName"`
	Description    string          `json:"description,omitempty"`
	ShipImageURL   string          `json:"shipImageUrl,omitempty"`
	Itinerary      []ItineraryDay  `json:"itinerary,omitempty"`
	Pricing        *PricingPayload `json:"pricing,omitempty"`
}

type ItineraryDay struct {
	Day         int    `json:"dayNumber"`
	PortName    string `json:"portName"`
	ArriveTime  string `json:"arriveTime,omitempty"`
	DepartTime  string `json:"departTime,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryOffer is a resolved offer prepared for a cabin card.
type CategoryOffer struct {
	Category         CabinCategory      `json:"category"`
	Label            string             `json:"label"`
	Offer            ResolvedCabinOffer `json:"offer"`
	ShortDescription string             `json:"shortDescription,omitempty"`
	ImageURL         string             `json:"imageUrl,omitempty"`
	OnboardCredit    int                `json:"onboardCredit"`
}

// CruisePage is everything the cruise detail page renders.
type CruisePage struct {
	Cruise       Cruise          `json:"cruise"`
	Offers       []CategoryOffer `json:"offers"`
	Limited      bool            `json:"limitedData"`
	LiveBookable bool            `json:"liveBookable"`
	CanonicalURL string          `json:"canonicalUrl"`
}

// CruiseSummary is one card on a listing page.
type CruiseSummary struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	CruiseLineID   int    `json:"cruiseLineId"`
	CruiseLineName string `json:"cruiseLineName"`
	ShipName       string `json:"shipName"`
	SailingDate    string `json:"sailingDate"`
	Nights         int    `json:"nights"`
	EmbarkPort     string `json:"embarkPortName"`
	ShipImageURL   string `json:"shipImageUrl,omitempty"`
	CheapestPrice  Amount `json:"cheapestPrice"`
	InteriorPrice  Amount `json:"interiorPrice"`
	OceanviewPrice Amount `json:"oceanviewPrice"`
	BalconyPrice   Amount `json:"balconyPrice"`
	SuitePrice     Amount `json:"suitePrice"`
}

// CategoryPrice returns the listing price for a category.
func (s CruiseSummary) CategoryPrice(c CabinCategory) Amount {
	switch c {
	case CategoryInterior:
		return s.InteriorPrice
	case CategoryOceanview:
		return s.OceanviewPrice
	case CategoryBalcony:
		return s.BalconyPrice
	case CategorySuite:
		return s.SuitePrice
	}
	return s.CheapestPrice
}

// CruiseFilter narrows a listing page.
type CruiseFilter struct {
	Category     CabinCategory
	CruiseLineID int
	Limit        int
	Offset       int
}

// CruiseCard is a CruiseSummary with its rendered link and price.
type CruiseCard struct {
	Summary  CruiseSummary `json:"cruise"`
	URL      string        `json:"url"`
	FromText string        `json:"fromPrice,omitempty"`
	ImageURL string        `json:"imageUrl,omitempty"`
}

// LiveBookingConfig decides which cruises may use live pricing and
// reservation. It is built from configuration and passed to services.
type LiveBookingConfig struct {
	Enabled               bool
	EligibleCruiseLineIDs map[int]struct{}
}

func NewLiveBookingConfig(enabled bool, cruiseLineIDs ...int) LiveBookingConfig {
	ids := make(map[int]struct{}, len(cruiseLineIDs))
	for _, id := range cruiseLineIDs {
		ids[id] = struct{}{}
	}
	return LiveBookingConfig{Enabled: enabled, EligibleCruiseLineIDs: ids}
}

// IsEligible reports whether cruises of the given line are live-bookable.
func (c LiveBookingConfig) IsEligible(cruiseLineID int) bool {
	if !c.Enabled {
		return false
	}
	_, ok := c.EligibleCruiseLineIDs[cruiseLineID]
	return ok
}
