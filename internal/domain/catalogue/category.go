package catalogue

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/httperr"
)

type Category string

const (
	CategoryPets     Category = "pets"
	CategoryBeauty   Category = "beauty"
	CategoryVehicles Category = "vehicles"
	CategoryHome     Category = "home"
)

var categories = map[Category]struct{}{
	CategoryPets:     {},
	CategoryBeauty:   {},
	CategoryVehicles: {},
	CategoryHome:     {},
}

func ValidCategory(c string) bool {
	_, ok := categories[Category(c)]
	return ok
}

// ValidateCategory is enforced on every write; the enumeration is closed.
func ValidateCategory(c string) error {
	if !ValidCategory(c) {
		return httperr.ErrBusiness(httperr.CodeInvalidCategory)
	}
	return nil
}

func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return httperr.ErrBusiness(httperr.CodeInvalidPrice)
	}
	return nil
}
