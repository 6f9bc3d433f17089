package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zipsea/models"
)

func liveCabin() models.LiveCabin {
	return models.LiveCabin{
		Code:          "4D",
		ResultNo:      "R-cheap",
		GradeNo:       "G-cheap",
		CheapestPrice: models.NewAmount(999),
		Fare:          models.NewAmount(800),
		Taxes:         models.NewAmount(150),
		RateCode:      "BESTRATE",
		Rates: map[string]models.RatePrice{
			"BESTRATE": {Price: models.NewAmount(1099), Fare: models.NewAmount(900), GradeNo: "G-best", ResultNo: "R-best"},
			"MILITARY": {Price: models.NewAmount(949), Fare: models.NewAmount(760), GradeNo: "G-mil", ResultNo: "R-mil"},
			"SENIOR":   {Price: models.NewAmount(979)},
		},
	}
}

func TestSelectRatePrice_SelectedRateCode(t *testing.T) {
	sel := SelectRatePrice(liveCabin(), "MILITARY")

	assert.Equal(t, models.RateSourceSelected, sel.Source)
	assert.Equal(t, "MILITARY", sel.RateCode)
	assert.Equal(t, 949.0, sel.Price.Value)
	assert.Equal(t, "G-mil", sel.GradeNo)
	assert.Equal(t, "R-mil", sel.ResultNo)
}

func TestSelectRatePrice_SelectedEntryInheritsCabinIdentifiers(t *testing.T) {
	sel := SelectRatePrice(liveCabin(), "SENIOR")

	assert.Equal(t, models.RateSourceSelected, sel.Source)
	assert.Equal(t, "G-cheap", sel.GradeNo)
	assert.Equal(t, "R-cheap", sel.ResultNo)
}

func TestSelectRatePrice_FallsBackToDefault(t *testing.T) {
	sel := SelectRatePrice(liveCabin(), "PASTGUEST")

	assert.Equal(t, models.RateSourceDefault, sel.Source)
	assert.Equal(t, "BESTRATE", sel.RateCode)
	assert.Equal(t, 1099.0, sel.Price.Value)
	assert.Equal(t, "R-best", sel.ResultNo)
}

func TestSelectRatePrice_NoSelectionUsesDefault(t *testing.T) {
	sel := SelectRatePrice(liveCabin(), "")
	assert.Equal(t, models.RateSourceDefault, sel.Source)
}

func TestSelectRatePrice_FallsBackToCheapest(t *testing.T) {
	c := liveCabin()
	c.RateCode = "GONE"

	sel := SelectRatePrice(c, "PASTGUEST")

	assert.Equal(t, models.RateSourceCheapest, sel.Source)
	assert.Equal(t, 999.0, sel.Price.Value)
	assert.Equal(t, 800.0, sel.Fare.Value)
	assert.False(t, sel.Gratuity.Valid)
	assert.Equal(t, "G-cheap", sel.GradeNo)
	assert.Equal(t, "R-cheap", sel.ResultNo)
}

func TestSelectRatePrice_NoRateTable(t *testing.T) {
	c := models.LiveCabin{CheapestPrice: models.NewAmount(500), GradeNo: "G", ResultNo: "R"}

	sel := SelectRatePrice(c, "MILITARY")

	assert.Equal(t, models.RateSourceCheapest, sel.Source)
	assert.Equal(t, 500.0, sel.Price.Value)
}

func TestPriceCabins(t *testing.T) {
	other := models.LiveCabin{Code: "1A", CheapestPrice: models.NewAmount(600)}

	priced := PriceCabins([]models.LiveCabin{liveCabin(), other}, "MILITARY")

	assert.Len(t, priced, 2)
	assert.Equal(t, models.RateSourceSelected, priced[0].Selection.Source)
	assert.Equal(t, models.RateSourceCheapest, priced[1].Selection.Source)
}
