package identity

import (
	"context"

	domain "github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type Authorize struct {
	repo   domain.Repository
	tokens *domain.TokenManager
}

func NewAuthorize(repo domain.Repository, tokens *domain.TokenManager) *Authorize {
	return &Authorize{repo: repo, tokens: tokens}
}

// Execute resolves the caller behind token and requires its current role to
// equal requiredRole. The role is re-read on every call.
func (uc *Authorize) Execute(
	ctx context.Context,
	token string,
	requiredRole string,
) (*domain.UserContext, error) {
	userID, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeTokenInvalid)
	}

	user, err := uc.repo.GetActiveUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != requiredRole {
		return nil, httperr.ErrBusiness(httperr.CodeRoleForbidden)
	}

	uctx := &domain.UserContext{UserID: user.ID, Role: user.Role}

	switch user.Role {
	case models.RoleProvider:
		p, err := uc.repo.GetProviderByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		uctx.ProviderID = p.ID
	case models.RoleCustomer:
		c, err := uc.repo.GetCustomerByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		uctx.CustomerID = c.ID
	}

	return uctx, nil
}
