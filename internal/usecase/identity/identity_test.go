package identity

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/infra/repository"
	"github.com/BruksfildServices01/local-services/internal/models"
	"github.com/BruksfildServices01/local-services/internal/testutil"
)

type fixture struct {
	repo      *repository.IdentityGormRepository
	tokens    *domain.TokenManager
	register  *Register
	login     *Login
	authorize *Authorize
}

func newFixture(t *testing.T, limiter domain.AttemptLimiter) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	repo := repository.NewIdentityGormRepository(db)
	tokens := domain.NewTokenManager("test-secret", time.Hour)
	return &fixture{
		repo:      repo,
		tokens:    tokens,
		register:  NewRegister(repo, nil),
		login:     NewLogin(repo, tokens, limiter, zap.NewNop()),
		authorize: NewAuthorize(repo, tokens),
	}
}

func (f *fixture) signup(t *testing.T, email, role string) uint {
	t.Helper()
	id, err := f.register.Execute(context.Background(), RegisterInput{
		FullName: "Pat Doe",
		Email:    email,
		Password: "s3cret",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return id
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("err = %v, want %s", err, code)
	}
}

func TestRegister_CreatesProfileForRole(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	providerUser := f.signup(t, "p@example.com", models.RoleProvider)
	customerUser := f.signup(t, "c@example.com", models.RoleCustomer)

	p, err := f.repo.GetProviderByUserID(ctx, providerUser)
	if err != nil {
		t.Fatalf("provider profile: %v", err)
	}
	if p.Name != "Pat Doe" || p.BusinessName != "Pat Doe" {
		t.Fatalf("provider = %+v, business name should default to full name", p)
	}
	if _, err := f.repo.GetCustomerByUserID(ctx, providerUser); err == nil {
		t.Fatal("provider must not get a customer profile")
	}

	if _, err := f.repo.GetCustomerByUserID(ctx, customerUser); err != nil {
		t.Fatalf("customer profile: %v", err)
	}

	u, _ := f.repo.GetActiveUserByID(ctx, providerUser)
	if u.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.signup(t, "taken@example.com", models.RoleCustomer)

	cases := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"missing name", RegisterInput{Email: "a@b.c", Password: "x", Role: "customer"}, httperr.CodeMissingField},
		{"missing password", RegisterInput{FullName: "A", Email: "a@b.c", Role: "customer"}, httperr.CodeMissingField},
		{"bad role", RegisterInput{FullName: "A", Email: "a@b.c", Password: "x", Role: "admin"}, httperr.CodeInvalidRole},
		{"duplicate", RegisterInput{FullName: "A", Email: "taken@example.com", Password: "x", Role: "provider"}, httperr.CodeEmailExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, tc.in)
			wantCode(t, err, tc.code)
		})
	}

	// Exact match only: a different case is a different address.
	if _, err := f.register.Execute(ctx, RegisterInput{
		FullName: "A", Email: "Taken@example.com", Password: "x", Role: "customer",
	}); err != nil {
		t.Fatalf("case variant rejected: %v", err)
	}
}

type rejectAll struct{}

func (rejectAll) Valid(context.Context, string) bool { return false }

func TestRegister_DomainChecker(t *testing.T) {
	f := newFixture(t, nil)
	uc := NewRegister(f.repo, rejectAll{})

	_, err := uc.Execute(context.Background(), RegisterInput{
		FullName: "A", Email: "a@nowhere.invalid", Password: "x", Role: "customer",
	})
	wantCode(t, err, httperr.CodeInvalidEmailDomain)
}

func TestLogin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	userID := f.signup(t, "c@example.com", models.RoleCustomer)

	out, err := f.login.Execute(ctx, LoginInput{Username: "c@example.com", Password: "s3cret", Role: "customer"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.UserID != userID || out.Role != "customer" || out.Token == "" {
		t.Fatalf("out = %+v", out)
	}
	if sub, err := f.tokens.Parse(out.Token); err != nil || sub != userID {
		t.Fatalf("token subject = %d, %v", sub, err)
	}

	_, err = f.login.Execute(ctx, LoginInput{Username: "c@example.com", Password: "wrong", Role: "customer"})
	wantCode(t, err, httperr.CodeInvalidCredentials)

	_, err = f.login.Execute(ctx, LoginInput{Username: "ghost@example.com", Password: "s3cret", Role: "customer"})
	wantCode(t, err, httperr.CodeInvalidCredentials)

	_, err = f.login.Execute(ctx, LoginInput{Username: "c@example.com", Password: "s3cret"})
	wantCode(t, err, httperr.CodeMissingField)
}

func TestLogin_RoleMismatchIssuesNoToken(t *testing.T) {
	f := newFixture(t, nil)
	f.signup(t, "c@example.com", models.RoleCustomer)

	out, err := f.login.Execute(context.Background(), LoginInput{
		Username: "c@example.com", Password: "s3cret", Role: "provider",
	})
	wantCode(t, err, httperr.CodeRoleMismatch)
	if out != nil {
		t.Fatalf("out = %+v, want nil", out)
	}
}

type countingLimiter struct {
	max      int
	failures map[string]int
}

func (l *countingLimiter) Blocked(_ context.Context, key string) (bool, error) {
	return l.failures[key] >= l.max, nil
}

func (l *countingLimiter) Fail(_ context.Context, key string) error {
	l.failures[key]++
	return nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	delete(l.failures, key)
	return nil
}

func TestLogin_Throttles(t *testing.T) {
	limiter := &countingLimiter{max: 2, failures: map[string]int{}}
	f := newFixture(t, limiter)
	ctx := context.Background()
	f.signup(t, "c@example.com", models.RoleCustomer)

	good := LoginInput{Username: "c@example.com", Password: "s3cret", Role: "customer"}
	bad := LoginInput{Username: "c@example.com", Password: "nope", Role: "customer"}

	if _, err := f.login.Execute(ctx, bad); err == nil {
		t.Fatal("bad password accepted")
	}
	if _, err := f.login.Execute(ctx, good); err != nil {
		t.Fatalf("login after one failure: %v", err)
	}
	if limiter.failures["c@example.com"] != 0 {
		t.Fatal("success must reset the counter")
	}

	f.login.Execute(ctx, bad)
	f.login.Execute(ctx, bad)

	_, err := f.login.Execute(ctx, good)
	wantCode(t, err, httperr.CodeTooManyAttempts)
}

func TestAuthorize(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	providerUser := f.signup(t, "p@example.com", models.RoleProvider)

	token, _ := f.tokens.Issue(providerUser)

	uctx, err := f.authorize.Execute(ctx, token, models.RoleProvider)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if uctx.UserID != providerUser || uctx.ProviderID == 0 || uctx.CustomerID != 0 {
		t.Fatalf("uctx = %+v", uctx)
	}

	_, err = f.authorize.Execute(ctx, token, models.RoleCustomer)
	wantCode(t, err, httperr.CodeRoleForbidden)

	_, err = f.authorize.Execute(ctx, token+"x", models.RoleProvider)
	wantCode(t, err, httperr.CodeTokenInvalid)

	ghost, _ := f.tokens.Issue(9999)
	_, err = f.authorize.Execute(ctx, ghost, models.RoleProvider)
	wantCode(t, err, httperr.CodeUserNotFound)
}
