package identity

import (
	"context"

	"github.com/BruksfildServices01/local-services/internal/models"
)

func ValidRole(role string) bool {
	return role == models.RoleCustomer || role == models.RoleProvider
}

// UserContext is the caller resolved for a single request. The role is read
// from storage on every call, never from the token.
type UserContext struct {
	UserID     uint
	Role       string
	ProviderID uint
	CustomerID uint
}

type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)

	// CreateAccount inserts the user and its role profile atomically.
	CreateAccount(ctx context.Context, user *models.User, businessName string) error

	GetActiveUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetActiveUserByID(ctx context.Context, id uint) (*models.User, error)

	GetProviderByUserID(ctx context.Context, userID uint) (*models.Provider, error)
	GetCustomerByUserID(ctx context.Context, userID uint) (*models.Customer, error)
}

// AttemptLimiter throttles repeated failed logins for the same identifier.
type AttemptLimiter interface {
	Blocked(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type NoopLimiter struct{}

func (NoopLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }
func (NoopLimiter) Fail(context.Context, string) error            { return nil }
func (NoopLimiter) Reset(context.Context, string) error           { return nil }
