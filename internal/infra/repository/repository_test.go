package repository

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/local-services/internal/audit"
	"github.com/BruksfildServices01/local-services/internal/domain/profile"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
	"github.com/BruksfildServices01/local-services/internal/testutil"
)

func TestIdentityRepository_DuplicateEmailOnInsert(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewIdentityGormRepository(db)
	ctx := context.Background()

	first := &models.User{FullName: "A", Email: "a@example.com", PasswordHash: "h", Role: models.RoleCustomer, IsActive: true}
	if err := repo.CreateAccount(ctx, first, ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &models.User{FullName: "B", Email: "a@example.com", PasswordHash: "h", Role: models.RoleProvider, IsActive: true}
	if err := repo.CreateAccount(ctx, dup, ""); !httperr.IsBusiness(err, httperr.CodeEmailExists) {
		t.Fatalf("err = %v, want email_already_exists", err)
	}

	var users, providers int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Provider{}).Count(&providers)
	if users != 1 || providers != 0 {
		t.Fatalf("users=%d providers=%d after failed signup", users, providers)
	}
}

func TestIdentityRepository_InactiveUsersAreHidden(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewIdentityGormRepository(db)

	u := models.User{FullName: "A", Email: "a@example.com", PasswordHash: "h", Role: models.RoleCustomer, IsActive: false}
	if err := db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := repo.GetActiveUserByEmail(context.Background(), "a@example.com"); !httperr.IsBusiness(err, httperr.CodeUserNotFound) {
		t.Fatalf("err = %v, want user_not_found", err)
	}
}

func TestProfileRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProfileGormRepository(db)
	ctx := context.Background()

	p := testutil.SeedProvider(t, db, "p@example.com", "", nil, nil)

	name := "Renamed"
	profile.ProviderPatch{BusinessName: &name}.Apply(p)
	if err := repo.SaveProvider(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SetProviderLocation(ctx, p.ID, 40.5, -73.25); err != nil {
		t.Fatalf("location: %v", err)
	}

	got, err := repo.GetProvider(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.BusinessName != "Renamed" || got.Name != p.Name {
		t.Fatalf("provider = %+v", got)
	}
	if !got.HasLocation() || *got.Latitude != 40.5 || *got.Longitude != -73.25 {
		t.Fatalf("location = %v,%v", got.Latitude, got.Longitude)
	}

	if err := repo.SetProviderLocation(ctx, 999, 1, 1); !httperr.IsBusiness(err, httperr.CodeProviderNotFound) {
		t.Fatalf("err = %v, want provider_not_found", err)
	}
}

func TestAuditLogRepository_List(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAuditLogGormRepository(db)
	logger := audit.New(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		logger.Log(ctx, audit.Event{ProviderID: 1, Action: audit.ActionBookingCreated, Entity: "booking"})
	}
	logger.Log(ctx, audit.Event{ProviderID: 1, Action: audit.ActionServiceCreated, Entity: "service"})
	logger.Log(ctx, audit.Event{ProviderID: 2, Action: audit.ActionServiceCreated, Entity: "service"})

	page, err := repo.List(ctx, audit.Filter{ProviderID: 1, Entity: "booking", Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 5 || len(page.Logs) != 2 {
		t.Fatalf("total=%d len=%d", page.Total, len(page.Logs))
	}

	all, _ := repo.List(ctx, audit.Filter{ProviderID: 2, Page: 1, Limit: 50})
	if all.Total != 1 || all.Logs[0].ProviderID != 2 {
		t.Fatalf("provider 2 logs = %+v", all)
	}
}
