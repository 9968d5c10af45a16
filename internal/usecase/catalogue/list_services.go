package catalogue

import (
	"context"

	domain "github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// ForProvider returns every service the provider owns, hidden ones included.
func (uc *ListServices) ForProvider(ctx context.Context, providerID uint) ([]models.Service, error) {
	return uc.repo.ListByProvider(ctx, providerID, false)
}

// Active is the public catalogue: the active services plus a summary of
// each provider keyed by provider id. An empty category lists all of them.
func (uc *ListServices) Active(
	ctx context.Context,
	category string,
) ([]models.Service, map[uint]domain.ProviderSummary, error) {
	if category != "" {
		if err := domain.ValidateCategory(category); err != nil {
			return nil, nil, err
		}
	}

	services, err := uc.repo.ListActive(ctx, category)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uint, 0, len(services))
	seen := map[uint]bool{}
	for _, s := range services {
		if !seen[s.ProviderID] {
			seen[s.ProviderID] = true
			ids = append(ids, s.ProviderID)
		}
	}

	providers, err := uc.repo.ProvidersWithEmail(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return services, providers, nil
}

// Provider returns a provider's public details.
func (uc *ListServices) Provider(ctx context.Context, providerID uint) (*models.Provider, error) {
	return uc.repo.GetProvider(ctx, providerID)
}

// OfProvider lists one provider's active services for the public.
func (uc *ListServices) OfProvider(ctx context.Context, providerID uint) ([]models.Service, error) {
	if _, err := uc.repo.GetProvider(ctx, providerID); err != nil {
		return nil, err
	}
	return uc.repo.ListByProvider(ctx, providerID, true)
}
