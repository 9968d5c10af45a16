package profile

import (
	"context"

	domain "github.com/BruksfildServices01/local-services/internal/domain/profile"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type Profiles struct {
	repo domain.Repository
}

func NewProfiles(repo domain.Repository) *Profiles {
	return &Profiles{repo: repo}
}

func (uc *Profiles) Provider(ctx context.Context, providerID uint) (*models.Provider, error) {
	return uc.repo.GetProvider(ctx, providerID)
}

func (uc *Profiles) UpdateProvider(
	ctx context.Context,
	providerID uint,
	patch domain.ProviderPatch,
) (*models.Provider, error) {
	p, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	if err := uc.repo.SaveProvider(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *Profiles) SetLocation(
	ctx context.Context,
	providerID uint,
	lat, lon float64,
) (*models.Provider, error) {
	if err := domain.ValidateLocation(lat, lon); err != nil {
		return nil, err
	}
	if err := uc.repo.SetProviderLocation(ctx, providerID, lat, lon); err != nil {
		return nil, err
	}
	return uc.repo.GetProvider(ctx, providerID)
}

func (uc *Profiles) Customer(ctx context.Context, customerID uint) (*models.Customer, error) {
	return uc.repo.GetCustomer(ctx, customerID)
}

func (uc *Profiles) UpdateCustomer(
	ctx context.Context,
	customerID uint,
	patch domain.CustomerPatch,
) (*models.Customer, error) {
	c, err := uc.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	patch.Apply(c)
	if err := uc.repo.SaveCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
