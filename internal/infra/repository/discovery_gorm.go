package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/local-services/internal/domain/discovery"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type DiscoveryGormRepository struct {
	db *gorm.DB
}

func NewDiscoveryGormRepository(db *gorm.DB) *DiscoveryGormRepository {
	return &DiscoveryGormRepository{db: db}
}

func (r *DiscoveryGormRepository) LocatedCandidates(
	ctx context.Context,
	category string,
) ([]domain.Candidate, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Select("services.*").
		Joins("JOIN providers ON providers.id = services.provider_id").
		Where("services.is_active = ?", true).
		Where("providers.latitude IS NOT NULL AND providers.longitude IS NOT NULL")
	if category != "" {
		q = q.Where("services.category = ?", category)
	}

	var services []models.Service
	if err := q.
		Preload("Provider").
		Order("services.id ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("load located services: %w", err)
	}

	out := make([]domain.Candidate, 0, len(services))
	for _, s := range services {
		p := s.Provider
		s.Provider = models.Provider{}
		out = append(out, domain.Candidate{Service: s, Provider: p})
	}
	return out, nil
}

var _ domain.Repository = (*DiscoveryGormRepository)(nil)
