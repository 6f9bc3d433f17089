package models

// RatePrice is the price breakdown of one cabin under one rate code.
type RatePrice struct {
	Price    Amount `json:"price"`
	Fare     Amount `json:"fare"`
	Taxes    Amount `json:"taxes"`
	Fees     Amount `json:"fees"`
	Gratuity Amount `json:"gratuity"`
	GradeNo  string `json:"gradeNo"`
	ResultNo string `json:"resultNo"`
}

// RateCodeInfo describes a rate code offered for the session.
type RateCodeInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Refundable  bool   `json:"isRefundable"`
}

// LiveCabin is a cabin grade returned by live pricing for a booking session.
type LiveCabin struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    CabinCategory `json:"category"`
	ImageURL    string        `json:"imageUrl,omitempty"`

	// identifiers and breakdown for the cheapest fallback
	ResultNo      string `json:"resultNo"`
	GradeNo       string `json:"gradeNo"`
	CheapestPrice Amount `json:"cheapestPrice"`
	Fare          Amount `json:"fare"`
	Taxes         Amount `json:"taxes"`
	Fees          Amount `json:"fees"`
	Gratuity      Amount `json:"gratuity"`

	// RateCode is the cabin's own default rate code.
	RateCode   string               `json:"rateCode,omitempty"`
	Rates      map[string]RatePrice `json:"ratesByCode,omitempty"`
	Guaranteed bool                 `json:"isGuaranteed"`
}

// LivePricing is the live cabin pricing for a booking session.
type LivePricing struct {
	Cabins    []LiveCabin    `json:"cabins"`
	RateCodes []RateCodeInfo `json:"rateCodes"`
}

// RateSource names the tier that produced a RateSelection.
type RateSource string

const (
	RateSourceSelected RateSource = "selected"
	RateSourceDefault  RateSource = "default"
	RateSourceCheapest RateSource = "cheapest"
)

// RateSelection is the price shown for a live cabin.
type RateSelection struct {
	Source   RateSource `json:"source"`
	RateCode string     `json:"rateCode,omitempty"`
	Price    Amount     `json:"price"`
	Fare     Amount     `json:"fare"`
	Taxes    Amount     `json:"taxes"`
	Fees     Amount     `json:"fees"`
	Gratuity Amount     `json:"gratuity"`
	GradeNo  string     `json:"gradeNo"`
	ResultNo string     `json:"resultNo"`
}
