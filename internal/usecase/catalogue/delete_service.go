package catalogue

import (
	"context"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	domain "github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type DeleteResult struct {
	// Deactivated is true when the service had bookings and was only
	// hidden instead of removed.
	Deactivated bool
}

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewDeleteService(repo domain.Repository, audit *audit.Dispatcher, clk clock.Clock) *DeleteService {
	return &DeleteService{repo: repo, audit: audit, clock: clk}
}

// Execute removes the service, or hides it when bookings reference it. The
// booking check and the write share one transaction holding the service
// row lock, so a booking created concurrently cannot slip in between.
func (uc *DeleteService) Execute(
	ctx context.Context,
	providerID uint,
	userID uint,
	serviceID uint,
) (DeleteResult, error) {
	var (
		s          *models.Service
		referenced bool
	)

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		var err error
		s, err = tx.LockOwnedService(ctx, providerID, serviceID)
		if err != nil {
			return err
		}

		referenced, err = tx.HasBookings(ctx, s.ID)
		if err != nil {
			return err
		}

		if referenced {
			s.IsActive = false
			s.UpdatedAt = uc.clock.Now()
			return tx.UpdateService(ctx, s)
		}
		return tx.DeleteService(ctx, s)
	})
	if err != nil {
		return DeleteResult{}, err
	}

	action := audit.ActionServiceDeleted
	if referenced {
		action = audit.ActionServiceDeactivated
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		UserID:     &userID,
		Action:     action,
		Entity:     "service",
		EntityID:   &s.ID,
		Metadata:   map[string]any{"name": s.Name},
	})

	return DeleteResult{Deactivated: referenced}, nil
}
