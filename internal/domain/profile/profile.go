package profile

import (
	"context"
	"math"

	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

// ProviderPatch carries the editable provider fields. Nil leaves a field
// untouched.
type ProviderPatch struct {
	Name         *string `json:"name"`
	BusinessName *string `json:"businessName"`
	Phone        *string `json:"phone"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zipCode"`
}

func (p ProviderPatch) Apply(dst *models.Provider) {
	set(&dst.Name, p.Name)
	set(&dst.BusinessName, p.BusinessName)
	set(&dst.Phone, p.Phone)
	set(&dst.Description, p.Description)
	set(&dst.Address, p.Address)
	set(&dst.City, p.City)
	set(&dst.State, p.State)
	set(&dst.ZipCode, p.ZipCode)
}

type CustomerPatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
}

func (p CustomerPatch) Apply(dst *models.Customer) {
	set(&dst.Name, p.Name)
	set(&dst.Phone, p.Phone)
	set(&dst.Address, p.Address)
	set(&dst.City, p.City)
	set(&dst.State, p.State)
	set(&dst.ZipCode, p.ZipCode)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ValidateLocation accepts finite degrees within [-90,90] x [-180,180].
func ValidateLocation(lat, lon float64) error {
	if !finite(lat) || !finite(lon) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return httperr.ErrBusiness(httperr.CodeInvalidCoordinates)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type Repository interface {
	GetProvider(ctx context.Context, providerID uint) (*models.Provider, error)
	SaveProvider(ctx context.Context, p *models.Provider) error
	SetProviderLocation(ctx context.Context, providerID uint, lat, lon float64) error

	GetCustomer(ctx context.Context, customerID uint) (*models.Customer, error)
	SaveCustomer(ctx context.Context, c *models.Customer) error
}
