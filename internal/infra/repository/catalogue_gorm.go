package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/local-services/internal/domain/catalogue"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type CatalogueGormRepository struct {
	db *gorm.DB
}

func NewCatalogueGormRepository(db *gorm.DB) *CatalogueGormRepository {
	return &CatalogueGormRepository{db: db}
}

func (r *CatalogueGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogueGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *CatalogueGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

// UpdateService stores s.UpdatedAt as given. Updates would replace it with
// gorm's own clock.
func (r *CatalogueGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).
		Model(s).
		Select("name", "description", "category", "price", "duration", "is_active", "image_url", "updated_at").
		UpdateColumns(s).Error; err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *CatalogueGormRepository) DeleteService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Delete(&models.Service{}, s.ID).Error; err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *CatalogueGormRepository) GetOwnedService(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", serviceID, providerID).
		First(&s).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeServiceNotFound)
	}
	return &s, nil
}

func (r *CatalogueGormRepository) LockOwnedService(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND provider_id = ?", serviceID, providerID).
		First(&s).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeServiceNotFound)
	}
	return &s, nil
}

func (r *CatalogueGormRepository) HasBookings(ctx context.Context, serviceID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count bookings: %w", err)
	}
	return count > 0, nil
}

func (r *CatalogueGormRepository) ListByProvider(
	ctx context.Context,
	providerID uint,
	activeOnly bool,
) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Where("provider_id = ?", providerID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list provider services: %w", err)
	}
	return services, nil
}

func (r *CatalogueGormRepository) ListActive(ctx context.Context, category string) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	return services, nil
}

func (r *CatalogueGormRepository) GetProvider(ctx context.Context, providerID uint) (*models.Provider, error) {
	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, providerID).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeProviderNotFound)
	}
	return &p, nil
}

func (r *CatalogueGormRepository) ProvidersWithEmail(
	ctx context.Context,
	ids []uint,
) (map[uint]domain.ProviderSummary, error) {
	out := make(map[uint]domain.ProviderSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []domain.ProviderSummary
	if err := r.db.WithContext(ctx).
		Table("providers").
		Select("providers.id, providers.name, providers.business_name, providers.phone, users.email, providers.city, providers.state, providers.rating").
		Joins("JOIN users ON users.id = providers.user_id").
		Where("providers.id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load providers: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

var _ domain.Repository = (*CatalogueGormRepository)(nil)
