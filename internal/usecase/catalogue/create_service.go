package catalogue

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/local-services/internal/audit"
	domain "github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type CreateServiceInput struct {
	Name        string
	Description string
	Category    string
	Price       *decimal.Decimal
	Duration    *int
	IsActive    *bool
}

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(repo domain.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{repo: repo, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	providerID uint,
	userID uint,
	in CreateServiceInput,
) (*models.Service, error) {
	if strings.TrimSpace(in.Name) == "" || in.Category == "" || in.Price == nil {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}
	if err := domain.ValidateCategory(in.Category); err != nil {
		return nil, err
	}
	if err := domain.ValidatePrice(*in.Price); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	s := &models.Service{
		ProviderID:  providerID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       *in.Price,
		Duration:    in.Duration,
		IsActive:    active,
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		UserID:     &userID,
		Action:     audit.ActionServiceCreated,
		Entity:     "service",
		EntityID:   &s.ID,
		Metadata: map[string]any{
			"name":     s.Name,
			"category": s.Category,
			"price":    s.Price.String(),
		},
	})

	return s, nil
}
