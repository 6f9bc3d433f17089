// Package slug encodes cruise identities into SEO friendly URL segments of
// the form <ship-name-slug>-<YYYY-MM-DD>-<cruiseId> and decodes them back.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"zipsea/models"
)

const dateLayout = "2006-01-02"

var (
	disallowed  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace  = regexp.MustCompile(`\s+`)
	hyphens     = regexp.MustCompile(`-+`)
	yearPattern = regexp.MustCompile(`^\d{4}$`)
	twoDigits   = regexp.MustCompile(`^\d{2}$`)
)

// NormalizeForSlug lower-cases text, drops everything except a-z, 0-9,
// whitespace and hyphens, and collapses whitespace and hyphen runs into a
// single hyphen with no leading or trailing hyphen.
func NormalizeForSlug(text string) string {
	s := strings.ToLower(text)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EncodeSlug builds the URL segment for a cruise. A departure date carrying
// a time component is cut down to its date.
func EncodeSlug(shipName, departureDate string, cruiseID int) string {
	if len(departureDate) > len(dateLayout) {
		departureDate = departureDate[:len(dateLayout)]
	}
	return NormalizeForSlug(shipName) + "-" + departureDate + "-" + strconv.Itoa(cruiseID)
}

// CruisePath is the page path for a cruise.
func CruisePath(shipName, departureDate string, cruiseID int) string {
	return "/cruise/" + EncodeSlug(shipName, departureDate, cruiseID)
}

// DecodeSlug parses a URL segment produced by EncodeSlug. Parsing anchors on
// the end of the string: the last segment is the cruise id and the three
// before it the date, so ship names containing numbers still decode. It
// returns false on any malformed input.
func DecodeSlug(s string) (*models.CruiseSlug, bool) {
	s = strings.Trim(strings.TrimSpace(s), "/")

	parts := strings.Split(s, "-")
	if len(parts) < 4 {
		return nil, false
	}
	n := len(parts)

	cruiseID, err := strconv.Atoi(parts[n-1])
	if err != nil {
		return nil, false
	}

	year, month, day := parts[n-4], parts[n-3], parts[n-2]
	if !yearPattern.MatchString(year) || !twoDigits.MatchString(month) || !twoDigits.MatchString(day) {
		return nil, false
	}

	date := year + "-" + month + "-" + day
	parsed, err := time.Parse(dateLayout, date)
	if err != nil || parsed.Format(dateLayout) != date {
		return nil, false
	}

	ship := strings.Join(parts[:n-4], "-")
	if ship == "" {
		return nil, false
	}

	return &models.CruiseSlug{
		ShipNameSlug:  ship,
		DepartureDate: date,
		CruiseID:      cruiseID,
	}, true
}
