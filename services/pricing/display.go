package pricing

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// MaxDescriptionLength is the cabin card description limit in runes.
	MaxDescriptionLength = 120

	// DefaultOnboardCreditRate is the share of the cabin fare offered as
	// onboard credit.
	DefaultOnboardCreditRate = 0.10
)

var htmlTag = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)

// IsHTML reports whether a description carries markup.
func IsHTML(s string) bool {
	return htmlTag.MatchString(s)
}

// TruncateDescription cuts plain-text descriptions longer than
// MaxDescriptionLength and appends "...". HTML descriptions are returned
// unchanged.
func TruncateDescription(desc string) string {
	if IsHTML(desc) {
		return desc
	}
	r := []rune(desc)
	if len(r) <= MaxDescriptionLength {
		return desc
	}
	return string(r[:MaxDescriptionLength]) + "..."
}

var (
	allowedTags = map[atom.Atom]bool{
		atom.P: true, atom.Br: true, atom.Ul: true, atom.Ol: true, atom.Li: true,
		atom.B: true, atom.Strong: true, atom.I: true, atom.Em: true, atom.Span: true,
	}
	// content inside these is dropped along with the tag
	droppedTags = map[atom.Atom]bool{
		atom.Script: true, atom.Style: true, atom.Iframe: true, atom.Object: true, atom.Embed: true,
	}
)

// SanitizeHTML reduces a markup description to a small set of formatting
// tags with no attributes. Text is re-escaped, so the result is safe to emit
// verbatim.
func SanitizeHTML(desc string) string {
	z := html.NewTokenizer(strings.NewReader(desc))
	var b strings.Builder
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.WriteString(html.EscapeString(string(z.Text())))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if droppedTags[tok.DataAtom] {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if skip == 0 && allowedTags[tok.DataAtom] {
				b.WriteString("<" + tok.Data + ">")
			}
		case html.EndTagToken:
			tok := z.Token()
			if droppedTags[tok.DataAtom] {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip == 0 && allowedTags[tok.DataAtom] && tok.DataAtom != atom.Br {
				b.WriteString("</" + tok.Data + ">")
			}
		}
	}
}

// OnboardCredit estimates the credit for a price, rounded down to a
// multiple of 10. Absent or non-positive prices earn nothing.
func OnboardCredit(price *float64, rate float64) int {
	if price == nil || *price <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Floor(*price*rate/10) * 10)
}
