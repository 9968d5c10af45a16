package identity

import (
	"context"

	domain "github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

// DomainChecker vets the domain part of an email address on signup.
type DomainChecker interface {
	Valid(ctx context.Context, email string) bool
}

type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	Role         string
	BusinessName string
}

type Register struct {
	repo    domain.Repository
	checker DomainChecker
}

// NewRegister builds the signup usecase. checker may be nil to skip the
// email domain lookup.
func NewRegister(repo domain.Repository, checker DomainChecker) *Register {
	return &Register{repo: repo, checker: checker}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (uint, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return 0, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	if !domain.ValidRole(in.Role) {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidRole)
	}

	if uc.checker != nil && !uc.checker.Valid(ctx, in.Email) {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidEmailDomain)
	}

	// Exact match. The unique index catches the concurrent case.
	exists, err := uc.repo.EmailExists(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, httperr.ErrBusiness(httperr.CodeEmailExists)
	}

	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     true,
	}
	if err := uc.repo.CreateAccount(ctx, user, in.BusinessName); err != nil {
		return 0, err
	}

	return user.ID, nil
}
