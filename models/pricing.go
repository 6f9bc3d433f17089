package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CabinPrice is one cabin entry inside a rate-code bucket.
type CabinPrice struct {
	CabinID   string    `json:"-"`
	Price     Amount    `json:"price"`
	CabinType CabinType `json:"cabintype"`
}

// RateBucket holds the cabins priced under one rate code. The empty rate
// code is the default bucket.
type RateBucket struct {
	RateCode string
	Cabins   []CabinPrice
}

// PriceTable maps rate code -> cabin id -> price record. It is kept as
// ordered slices so the payload's key order survives decoding.
type PriceTable []RateBucket

// Bucket returns the bucket for a rate code.
func (t PriceTable) Bucket(rateCode string) (RateBucket, bool) {
	for _, b := range t {
		if b.RateCode == rateCode {
			return b, true
		}
	}
	return RateBucket{}, false
}

// UnmarshalJSON keeps whatever decodes. A cabin record or rate bucket with
// the wrong shape is dropped rather than failing the whole cruise.
func (t *PriceTable) UnmarshalJSON(data []byte) error {
	*t = nil
	return decodeObject(data, func(rateCode string, raw json.RawMessage) error {
		bucket := RateBucket{RateCode: rateCode}
		err := decodeObject(raw, func(cabinID string, rec json.RawMessage) error {
			if isNull(rec) {
				return nil
			}
			var cp CabinPrice
			if err := json.Unmarshal(rec, &cp); err != nil {
				return nil
			}
			cp.CabinID = cabinID
			bucket.Cabins = append(bucket.Cabins, cp)
			return nil
		})
		if err != nil {
			return nil
		}
		*t = append(*t, bucket)
		return nil
	})
}

func (t PriceTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(b.RateCode)
		buf.Write(key)
		buf.WriteString(":{")
		for j, c := range b.Cabins {
			if j > 0 {
				buf.WriteByte(',')
			}
			id, _ := json.Marshal(c.CabinID)
			rec, err := json.Marshal(c)
			if err != nil {
				return nil, err
			}
			buf.Write(id)
			buf.WriteByte(':')
			buf.Write(rec)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeObject walks a JSON object in key order. null decodes as empty.
func decodeObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// CabinMeta describes a cabin grade.
type CabinMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageurl"`
	ImageURLHD  string `json:"imageurlhd"`
}

// CabinCatalog maps cabin id to its grade metadata. Entries that are not
// objects (older feeds sent bare strings) are skipped.
type CabinCatalog map[string]CabinMeta

func (c *CabinCatalog) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	out := CabinCatalog{}
	err := decodeObject(data, func(id string, raw json.RawMessage) error {
		if isNull(raw) {
			return nil
		}
		var meta CabinMeta
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil
		}
		out[id] = meta
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// PriceSummary is the pre-aggregated cheapest price per category.
type PriceSummary struct {
	Interior  Amount `json:"interiorPrice"`
	Oceanview Amount `json:"oceanviewPrice"`
	Balcony   Amount `json:"balconyPrice"`
	Suite     Amount `json:"suitePrice"`
}

// PricingPayload is the raw pricing data owned by the pricing service.
type PricingPayload struct {
	Summary *PriceSummary `json:"cheapestPricing,omitempty"`

	CheapestInside  Amount `json:"cheapestinside"`
	CheapestOutside Amount `json:"cheapestoutside"`
	CheapestBalcony Amount `json:"cheapestbalcony"`
	CheapestSuite   Amount `json:"cheapestsuite"`

	CheapestInsideCode  string `json:"cheapestinsidepricecode,omitempty"`
	CheapestOutsideCode string `json:"cheapestoutsidepricecode,omitempty"`
	CheapestBalconyCode string `json:"cheapestbalconypricecode,omitempty"`
	CheapestSuiteCode   string `json:"cheapestsuitepricecode,omitempty"`

	Prices PriceTable   `json:"prices,omitempty"`
	Cabins CabinCatalog `json:"cabins,omitempty"`
}

// SummaryPrice returns the pre-aggregated price for a category.
func (p *PricingPayload) SummaryPrice(c CabinCategory) Amount {
	if p == nil || p.Summary == nil {
		return Amount{}
	}
	switch c {
	case CategoryInterior:
		return p.Summary.Interior
	case CategoryOceanview:
		return p.Summary.Oceanview
	case CategoryBalcony:
		return p.Summary.Balcony
	case CategorySuite:
		return p.Summary.Suite
	}
	return Amount{}
}

// CheapestPrice returns the payload-level cheapest price for a category.
func (p *PricingPayload) CheapestPrice(c CabinCategory) Amount {
	if p == nil {
		return Amount{}
	}
	switch c {
	case CategoryInterior:
		return p.CheapestInside
	case CategoryOceanview:
		return p.CheapestOutside
	case CategoryBalcony:
		return p.CheapestBalcony
	case CategorySuite:
		return p.CheapestSuite
	}
	return Amount{}
}

// PriceCode returns the price-code hint stored for a category.
func (p *PricingPayload) PriceCode(c CabinCategory) string {
	if p == nil {
		return ""
	}
	switch c {
	case CategoryInterior:
		return p.CheapestInsideCode
	case CategoryOceanview:
		return p.CheapestOutsideCode
	case CategoryBalcony:
		return p.CheapestBalconyCode
	case CategorySuite:
		return p.CheapestSuiteCode
	}
	return ""
}

// ResolvedCabinOffer is the display-ready result for one category. Nil
// fields render as placeholders.
type ResolvedCabinOffer struct {
	Price       *float64 `json:"price"`
	CabinCode   *string  `json:"cabinCode"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}
