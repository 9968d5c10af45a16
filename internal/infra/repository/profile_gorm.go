package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/local-services/internal/domain/profile"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func (r *ProfileGormRepository) GetProvider(ctx context.Context, providerID uint) (*models.Provider, error) {
	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, providerID).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeProviderNotFound)
	}
	return &p, nil
}

func (r *ProfileGormRepository) SaveProvider(ctx context.Context, p *models.Provider) error {
	if err := r.db.WithContext(ctx).
		Model(p).
		Select("name", "business_name", "phone", "description", "address", "city", "state", "zip_code", "updated_at").
		Updates(p).Error; err != nil {
		return fmt.Errorf("update provider profile: %w", err)
	}
	return nil
}

func (r *ProfileGormRepository) SetProviderLocation(
	ctx context.Context,
	providerID uint,
	lat, lon float64,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Provider{}).
		Where("id = ?", providerID).
		Updates(map[string]any{"latitude": lat, "longitude": lon})
	if res.Error != nil {
		return fmt.Errorf("update provider location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeProviderNotFound)
	}
	return nil
}

func (r *ProfileGormRepository) GetCustomer(ctx context.Context, customerID uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, customerID).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeCustomerNotFound)
	}
	return &c, nil
}

func (r *ProfileGormRepository) SaveCustomer(ctx context.Context, c *models.Customer) error {
	if err := r.db.WithContext(ctx).
		Model(c).
		Select("name", "phone", "address", "city", "state", "zip_code", "updated_at").
		Updates(c).Error; err != nil {
		return fmt.Errorf("update customer profile: %w", err)
	}
	return nil
}

var _ domain.Repository = (*ProfileGormRepository)(nil)
