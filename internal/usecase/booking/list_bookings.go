package booking

import (
	"context"

	domain "github.com/BruksfildServices01/local-services/internal/domain/booking"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForProvider lists newest first. A non-empty status must be one of the
// four known values.
func (uc *ListBookings) ForProvider(
	ctx context.Context,
	providerID uint,
	status string,
) ([]models.Booking, error) {
	if status != "" {
		if _, err := domain.ParseStatus(status); err != nil {
			return nil, err
		}
	}
	return uc.repo.ListProviderBookings(ctx, providerID, status)
}

func (uc *ListBookings) Get(ctx context.Context, providerID, bookingID uint) (*models.Booking, error) {
	return uc.repo.GetProviderBooking(ctx, providerID, bookingID)
}

func (uc *ListBookings) ForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return uc.repo.ListCustomerBookings(ctx, customerID)
}
