package catalogue

import (
	"context"

	"github.com/BruksfildServices01/local-services/internal/models"
)

type Repository interface {
	// WithinTx runs fn against a repository bound to one transaction.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, s *models.Service) error

	// GetOwnedService only resolves services belonging to providerID.
	GetOwnedService(ctx context.Context, providerID, serviceID uint) (*models.Service, error)
	// LockOwnedService is GetOwnedService holding a row lock until the
	// surrounding transaction ends.
	LockOwnedService(ctx context.Context, providerID, serviceID uint) (*models.Service, error)
	HasBookings(ctx context.Context, serviceID uint) (bool, error)

	ListByProvider(ctx context.Context, providerID uint, activeOnly bool) ([]models.Service, error)
	ListActive(ctx context.Context, category string) ([]models.Service, error)

	GetProvider(ctx context.Context, providerID uint) (*models.Provider, error)
	// ProvidersWithEmail loads providers by id along with their account email.
	ProvidersWithEmail(ctx context.Context, ids []uint) (map[uint]ProviderSummary, error)
}

// ProviderSummary is the provider projection embedded in public listings.
type ProviderSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	BusinessName string  `json:"businessName"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Rating       float64 `json:"rating"`
}
