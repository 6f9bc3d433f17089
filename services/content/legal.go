// Package content serves the static legal pages.
package content

import (
	"errors"

	"zipsea/models"
)

var ErrSectionNotFound = errors.New("legal section not found")

type LegalService interface {
	Sections() []models.LegalSection
	Section(id string) (*models.LegalSection, error)
}

// DefaultLegalService is the production implementation.
type DefaultLegalService struct {
	sections []models.LegalSection
}

func NewLegalService() *DefaultLegalService {
	return &DefaultLegalService{sections: legalSections()}
}

// Sections returns all legal documents in display order.
func (s *DefaultLegalService) Sections() []models.LegalSection {
	out := make([]models.LegalSection, len(s.sections))
	copy(out, s.sections)
	return out
}

// Section returns one legal document by ID.
func (s *DefaultLegalService) Section(id string) (*models.LegalSection, error) {
	for _, sec := range s.sections {
		if sec.ID == id {
			sec := sec
			return &sec, nil
		}
	}
	return nil, ErrSectionNotFound
}

func legalSections() []models.LegalSection {
	return []models.LegalSection{
		{
			ID:      "terms",
			Title:   "Terms of Service",
			Summary: "The terms that apply when you browse cruises or request a quote on Zipsea.",
			Content: termsOfService,
			Version: "v1.2",
			Updated: "2025-08-01",
		},
		{
			ID:      "privacy",
			Title:   "Privacy Policy",
			Summary: "What we collect when you request a quote and how we use it.",
			Content: privacyPolicy,
			Version: "v1.1",
			Updated: "2025-08-01",
		},
		{
			ID:      "pricing",
			Title:   "Pricing & Onboard Credit",
			Summary: "How displayed fares and onboard credit estimates are calculated.",
			Content: pricingPolicy,
			Version: "v1.0",
			Updated: "2025-08-01",
		},
		{
			ID:      "cancellation",
			Title:   "Deposits, Holds & Cancellations",
			Summary: "How cabin holds, deposits and cruise line cancellation rules work.",
			Content: cancellationPolicy,
			Version: "v1.0",
			Updated: "2025-08-01",
		},
	}
}

const termsOfService = `Zipsea is a cruise travel agency. By using this site you agree to these terms.

1. Fares: Prices come from the cruise lines and change without notice until a booking is confirmed.
2. Quotes: A quote request is not a reservation. An agent will reply with availability and final pricing.
3. Bookings: Reservations are made with the cruise line and subject to its contract of carriage.
4. Accuracy: Itineraries, ship details and images are provided by the cruise lines.
5. Contact: Questions about a booking go to your Zipsea agent or support@zipsea.com.`

const privacyPolicy = `We collect only what we need to quote and book your cruise.

1. Data We Collect: Email, party size, child ages, discount eligibility and your notes.
2. How We Use It: Preparing quotes, contacting you about them and completing reservations.
3. Sharing: Guest details are shared with the cruise line only when you book.
4. Rights: You can ask us to delete your quote history at any time.`

const pricingPolicy = `Displayed prices are per person, cruise fare only, based on double occupancy.

1. Taxes, fees and port expenses are shown separately when known.
2. Onboard credit is estimated as a share of the cabin fare and rounded down to the nearest $10.
3. The final credit is confirmed by your agent at booking.`

const cancellationPolicy = `1. Holds: Some cruise lines allow a courtesy hold before a deposit is due.
2. Deposits: Deposit amounts and due dates are set by the cruise line.
3. Cancellations: Cruise line penalties apply and increase closer to sailing.
4. Refundable fares: Refundable and non-refundable rate codes are labelled when you choose a rate.`
