package pricing

import "zipsea/models"

var categoryToCabinType = map[models.CabinCategory]models.CabinType{
	models.CategoryInterior:  models.CabinTypeInside,
	models.CategoryOceanview: models.CabinTypeOutside,
	models.CategoryBalcony:   models.CabinTypeBalcony,
	models.CategorySuite:     models.CabinTypeSuite,
}

// CategoryToCabinType maps a display category to the payload cabin type.
func CategoryToCabinType(c models.CabinCategory) (models.CabinType, bool) {
	t, ok := categoryToCabinType[c]
	return t, ok
}

// CabinTypeToCategory maps a payload cabin type back to its display category.
func CabinTypeToCategory(t models.CabinType) (models.CabinCategory, bool) {
	for c, ct := range categoryToCabinType {
		if ct == t {
			return c, true
		}
	}
	return "", false
}
