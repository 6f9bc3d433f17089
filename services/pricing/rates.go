package pricing

import "zipsea/models"

// SelectRatePrice picks the price shown for a live cabin. The user's
// selected rate code wins when the cabin prices it, then the cabin's own
// default rate code, then the cabin's cheapest price. Entries are never
// merged across rate codes.
func SelectRatePrice(cabin models.LiveCabin, selectedRateCode string) models.RateSelection {
	if selectedRateCode != "" {
		if rp, ok := cabin.Rates[selectedRateCode]; ok {
			return fromRate(models.RateSourceSelected, selectedRateCode, rp, cabin)
		}
	}

	if cabin.RateCode != "" {
		if rp, ok := cabin.Rates[cabin.RateCode]; ok {
			return fromRate(models.RateSourceDefault, cabin.RateCode, rp, cabin)
		}
	}

	return models.RateSelection{
		Source:   models.RateSourceCheapest,
		RateCode: cabin.RateCode,
		Price:    cabin.CheapestPrice,
		Fare:     cabin.Fare,
		Taxes:    cabin.Taxes,
		Fees:     cabin.Fees,
		Gratuity: cabin.Gratuity,
		GradeNo:  cabin.GradeNo,
		ResultNo: cabin.ResultNo,
	}
}

// PriceCabins applies SelectRatePrice to every cabin.
func PriceCabins(cabins []models.LiveCabin, selectedRateCode string) []models.PricedCabin {
	out := make([]models.PricedCabin, 0, len(cabins))
	for _, c := range cabins {
		out = append(out, models.PricedCabin{Cabin: c, Selection: SelectRatePrice(c, selectedRateCode)})
	}
	return out
}

func fromRate(source models.RateSource, code string, rp models.RatePrice, cabin models.LiveCabin) models.RateSelection {
	sel := models.RateSelection{
		Source:   source,
		RateCode: code,
		Price:    rp.Price,
		Fare:     rp.Fare,
		Taxes:    rp.Taxes,
		Fees:     rp.Fees,
		Gratuity: rp.Gratuity,
		GradeNo:  rp.GradeNo,
		ResultNo: rp.ResultNo,
	}
	// a rate entry without its own identifiers books the cabin's grade
	if sel.GradeNo == "" {
		sel.GradeNo = cabin.GradeNo
	}
	if sel.ResultNo == "" {
		sel.ResultNo = cabin.ResultNo
	}
	return sel
}
