package identity

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/httperr"
)

type LoginInput struct {
	Username string
	Password string
	Role     string
}

type LoginOutput struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID uint   `json:"user_id"`
}

type Login struct {
	repo    domain.Repository
	tokens  *domain.TokenManager
	limiter domain.AttemptLimiter
	logger  *zap.Logger
}

func NewLogin(
	repo domain.Repository,
	tokens *domain.TokenManager,
	limiter domain.AttemptLimiter,
	logger *zap.Logger,
) *Login {
	if limiter == nil {
		limiter = domain.NoopLimiter{}
	}
	return &Login{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	// Limiter outages fail open.
	blocked, err := uc.limiter.Blocked(ctx, in.Username)
	if err != nil {
		uc.logger.Warn("login limiter unavailable", zap.Error(err))
	}
	if blocked {
		return nil, httperr.ErrBusiness(httperr.CodeTooManyAttempts)
	}

	var hash *string
	user, err := uc.repo.GetActiveUserByEmail(ctx, in.Username)
	switch {
	case err == nil:
		hash = &user.PasswordHash
	case !httperr.IsBusiness(err, httperr.CodeUserNotFound):
		return nil, err
	}

	ok, err := domain.VerifyPassword(in.Password, hash)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := uc.limiter.Fail(ctx, in.Username); err != nil {
			uc.logger.Warn("login limiter unavailable", zap.Error(err))
		}
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if user.Role != in.Role {
		return nil, httperr.ErrBusiness(httperr.CodeRoleMismatch)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.limiter.Reset(ctx, in.Username); err != nil {
		uc.logger.Warn("login limiter unavailable", zap.Error(err))
	}

	return &LoginOutput{Token: token, Role: user.Role, UserID: user.ID}, nil
}
