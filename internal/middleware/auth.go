package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/httperr"
)

const ContextUser = "userContext"

// Authorizer resolves a bearer token into the caller for one role.
type Authorizer interface {
	Execute(ctx context.Context, token, requiredRole string) (*identity.UserContext, error)
}

// RequireRole rejects requests whose caller does not currently hold role.
// The resolved caller is stored on the gin context under ContextUser.
func RequireRole(authz Authorizer, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httperr.Respond(c, httperr.ErrBusiness(httperr.CodeTokenInvalid))
			c.Abort()
			return
		}

		user, err := authz.Execute(c.Request.Context(), token, role)
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the caller set by RequireRole.
func CurrentUser(c *gin.Context) *identity.UserContext {
	return c.MustGet(ContextUser).(*identity.UserContext)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
