package booking

import (
	"context"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	domain "github.com/BruksfildServices01/local-services/internal/domain/booking"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewSetStatus(repo domain.Repository, audit *audit.Dispatcher, clk clock.Clock) *SetStatus {
	return &SetStatus{repo: repo, audit: audit, clock: clk}
}

// Execute moves an owned booking to status. Any of the four statuses is
// accepted from any current status.
func (uc *SetStatus) Execute(
	ctx context.Context,
	providerID uint,
	userID uint,
	bookingID uint,
	status string,
) (*models.Booking, error) {
	b, err := uc.repo.GetProviderBooking(ctx, providerID, bookingID)
	if err != nil {
		return nil, err
	}

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	from := domain.Status(b.Status)
	domain.SetStatus(b, to, uc.clock.Now())

	if err := uc.repo.UpdateBookingStatus(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		UserID:     &userID,
		Action:     audit.ActionBookingStatusChanged,
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]any{
			"from":               from,
			"to":                 to,
			"transition_allowed": domain.CanTransition(from, to),
		},
	})

	return b, nil
}
