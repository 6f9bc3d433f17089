package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipsea/models"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"home.html", "listing.html", "cruise.html", "not_found.html", "legal.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestCruiseTemplate_LimitedBanner(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "cruise.html", map[string]any{
		"Title": "Symphony",
		"Page": &models.CruisePage{
			Cruise:  models.Cruise{Name: "7 Night Western Caribbean", SailingDate: "2025-10-05"},
			Limited: true,
		},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Limited data")
	assert.Contains(t, buf.String(), "October 5, 2025")
}

func TestCruiseTemplate_Offers(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	price := 1499.0
	name := "Balcony Stateroom"

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "cruise.html", map[string]any{
		"Title": "Symphony",
		"Page": &models.CruisePage{
			Offers: []models.CategoryOffer{
				{Category: models.CategoryBalcony, Label: "Balcony", Offer: models.ResolvedCabinOffer{Price: &price, Name: &name}, OnboardCredit: 140},
				{Category: models.CategorySuite, Label: "Suite"},
			},
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "$1,499")
	assert.Contains(t, out, "+$140 onboard credit")
	assert.Contains(t, out, "Balcony Stateroom")
	assert.Contains(t, out, "Call for price")
}

func TestCruiseTemplate_Descriptions(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "cruise.html", map[string]any{
		"Title": "Symphony",
		"Page": &models.CruisePage{
			Offers: []models.CategoryOffer{
				{Category: models.CategoryInterior, Label: "Interior", ShortDescription: `<p>Two <b>twin</b> beds<script>alert(1)</script></p>`},
				{Category: models.CategoryOceanview, Label: "Oceanview", ShortDescription: "Sea views & more"},
			},
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<p>Two <b>twin</b> beds</p>")
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "&lt;p&gt;")
	assert.Contains(t, out, "Sea views &amp; more")
}

func TestFuncs(t *testing.T) {
	f := Funcs()
	sailDate := f["sailDate"].(func(string) string)
	assert.Equal(t, "March 15, 2025", sailDate("2025-03-15T00:00:00Z"))
	assert.Equal(t, "soon", sailDate("soon"))
}
