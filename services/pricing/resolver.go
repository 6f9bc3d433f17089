// Package pricing turns raw pricing payloads into display-ready cabin offers.
// Everything here is pure: missing or malformed input degrades to nil
// fields, never to an error.
package pricing

import (
	"strings"

	"zipsea/models"
)

// ResolveCabinOffer resolves price, cabin code, name, description and image
// for one category. priceHint is the category's price code, either
// "RATECODE" or "RATECODE|CABINCODE|OCCUPANCY"; empty means no hint.
func ResolveCabinOffer(payload *models.PricingPayload, category models.CabinCategory, priceHint string) models.ResolvedCabinOffer {
	var offer models.ResolvedCabinOffer
	if payload == nil {
		return offer
	}

	offer.Price = categoryPrice(payload, category)

	if len(payload.Prices) == 0 && len(payload.Cabins) == 0 {
		return offer
	}

	cabinCode, ok := resolveCabinCode(payload.Prices, category, priceHint)
	if !ok {
		return offer
	}
	offer.CabinCode = &cabinCode

	meta, ok := payload.Cabins[cabinCode]
	if !ok {
		return offer
	}

	offer.Name = nonEmpty(meta.Name)
	offer.Description = nonEmpty(meta.Description)
	if meta.ImageURLHD != "" {
		offer.Image = nonEmpty(meta.ImageURLHD)
	} else {
		offer.Image = nonEmpty(meta.ImageURL)
	}
	return offer
}

// ResolveAll resolves every category using the payload's own price codes.
func ResolveAll(payload *models.PricingPayload) map[models.CabinCategory]models.ResolvedCabinOffer {
	out := make(map[models.CabinCategory]models.ResolvedCabinOffer, len(models.CabinCategories))
	for _, c := range models.CabinCategories {
		out[c] = ResolveCabinOffer(payload, c, payload.PriceCode(c))
	}
	return out
}

func categoryPrice(payload *models.PricingPayload, category models.CabinCategory) *float64 {
	if p := payload.SummaryPrice(category); p.Valid {
		return p.Ptr()
	}
	return payload.CheapestPrice(category).Ptr()
}

func resolveCabinCode(prices models.PriceTable, category models.CabinCategory, priceHint string) (string, bool) {
	cabinType, ok := CategoryToCabinType(category)
	if !ok {
		return "", false
	}

	hint := strings.TrimSpace(priceHint)
	if hint == "" {
		return cheapestCabin(prices, cabinType)
	}

	if parts := strings.Split(hint, "|"); len(parts) > 1 {
		if code := strings.TrimSpace(parts[1]); code != "" {
			return code, true
		}
		return "", false
	}

	bucket, ok := prices.Bucket(hint)
	if !ok {
		return "", false
	}
	return cheapestCabin(models.PriceTable{bucket}, cabinType)
}

// cheapestCabin returns the lowest priced cabin of the given type across the
// buckets. Ties keep the first entry encountered.
func cheapestCabin(prices models.PriceTable, cabinType models.CabinType) (string, bool) {
	var (
		best  string
		price float64
		found bool
	)
	for _, bucket := range prices {
		for _, c := range bucket.Cabins {
			if !strings.EqualFold(string(c.CabinType), string(cabinType)) || !c.Price.Valid {
				continue
			}
			if !found || c.Price.Value < price {
				best, price, found = c.CabinID, c.Price.Value, true
			}
		}
	}
	return best, found
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
