package catalogue

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/clock"
	domain "github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

// UpdateServiceInput is a partial update; nil fields are left unchanged.
type UpdateServiceInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Duration    *int
	IsActive    *bool
}

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewUpdateService(repo domain.Repository, audit *audit.Dispatcher, clk clock.Clock) *UpdateService {
	return &UpdateService{repo: repo, audit: audit, clock: clk}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	providerID uint,
	userID uint,
	serviceID uint,
	in UpdateServiceInput,
) (*models.Service, error) {
	s, err := uc.repo.GetOwnedService(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	changed := []string{}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, httperr.ErrBusiness(httperr.CodeMissingField)
		}
		s.Name = *in.Name
		changed = append(changed, "name")
	}
	if in.Description != nil {
		s.Description = *in.Description
		changed = append(changed, "description")
	}
	if in.Category != nil {
		if err := domain.ValidateCategory(*in.Category); err != nil {
			return nil, err
		}
		s.Category = *in.Category
		changed = append(changed, "category")
	}
	if in.Price != nil {
		if err := domain.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
		s.Price = *in.Price
		changed = append(changed, "price")
	}
	if in.Duration != nil {
		s.Duration = in.Duration
		changed = append(changed, "duration")
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
		changed = append(changed, "is_active")
	}

	s.UpdatedAt = uc.clock.Now()
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		UserID:     &userID,
		Action:     audit.ActionServiceUpdated,
		Entity:     "service",
		EntityID:   &s.ID,
		Metadata:   map[string]any{"fields": changed},
	})

	return s, nil
}
