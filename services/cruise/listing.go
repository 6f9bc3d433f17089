package cruise

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"zipsea/models"
	"zipsea/services/slug"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

var usd = message.NewPrinter(language.AmericanEnglish)

// ListCruises returns listing cards for filter. Each card links to the
// cruise page and shows the "from" price for the filtered category, or the
// overall cheapest price when no category is set.
func (s *Service) ListCruises(ctx context.Context, filter models.CruiseFilter) ([]models.CruiseCard, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	summaries, err := s.api.ListCruises(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("cruise.ListCruises: %w", err)
	}

	cards := make([]models.CruiseCard, 0, len(summaries))
	for _, sum := range summaries {
		price := sum.CheapestPrice
		if filter.Category != "" {
			price = sum.CategoryPrice(filter.Category)
		}
		cards = append(cards, models.CruiseCard{
			Summary:  sum,
			URL:      slug.CruisePath(sum.ShipName, sum.SailingDate, sum.ID),
			FromText: FormatPrice(price),
			ImageURL: s.imageURL(sum.ShipImageURL, cardImageWidth),
		})
	}
	return cards, nil
}

// FormatPrice renders a positive amount as whole US dollars with grouping,
// e.g. "$1,299". Missing and non-positive amounts render as "".
func FormatPrice(a models.Amount) string {
	if !a.Positive() {
		return ""
	}
	return usd.Sprintf("$%d", int64(math.Round(a.Value)))
}
