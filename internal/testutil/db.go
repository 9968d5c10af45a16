// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/local-services/internal/db"
	"github.com/BruksfildServices01/local-services/internal/models"
)

// NewDB opens a migrated in-memory sqlite database. A single connection
// keeps every query (transactions included) on the same memory store.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func SeedProvider(t *testing.T, db *gorm.DB, email, phone string, lat, lon *float64) *models.Provider {
	t.Helper()

	user := models.User{FullName: "Provider " + email, Email: email, PasswordHash: "x", Role: models.RoleProvider, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed provider user: %v", err)
	}
	p := models.Provider{
		UserID:       user.ID,
		Name:         user.FullName,
		BusinessName: user.FullName + " LLC",
		Phone:        phone,
		Latitude:     lat,
		Longitude:    lon,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return &p
}

func SeedCustomer(t *testing.T, db *gorm.DB, email, phone string) *models.Customer {
	t.Helper()

	user := models.User{FullName: "Customer " + email, Email: email, PasswordHash: "x", Role: models.RoleCustomer, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed customer user: %v", err)
	}
	c := models.Customer{UserID: user.ID, Name: user.FullName, Phone: phone, Address: "1 Main St"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return &c
}

func SeedService(t *testing.T, db *gorm.DB, providerID uint, name, category, price string, active bool) *models.Service {
	t.Helper()

	s := models.Service{
		ProviderID: providerID,
		Name:       name,
		Category:   category,
		Price:      decimal.RequireFromString(price),
		IsActive:   active,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return &s
}

func Float(v float64) *float64 { return &v }
