package booking

import (
	"context"

	"github.com/BruksfildServices01/local-services/internal/models"
)

// ProviderContact is what the notification side needs about a provider.
type ProviderContact struct {
	ID    uint
	Name  string
	Phone string
	Email string
}

type Repository interface {
	// WithinTx runs fn against a repository bound to one transaction. A
	// returned error rolls everything back.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	GetCustomer(ctx context.Context, customerID uint) (*models.Customer, error)
	GetProviderContact(ctx context.Context, providerID uint) (*ProviderContact, error)
	// GetBookableService resolves active services only.
	GetBookableService(ctx context.Context, serviceID uint) (*models.Service, error)

	CreateBooking(ctx context.Context, b *models.Booking) error
	UpdateBookingStatus(ctx context.Context, b *models.Booking) error

	// GetProviderBooking only resolves bookings owned by providerID.
	GetProviderBooking(ctx context.Context, providerID, bookingID uint) (*models.Booking, error)
	ListProviderBookings(ctx context.Context, providerID uint, status string) ([]models.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID uint) ([]models.Booking, error)
}
