package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/local-services/internal/domain/booking"
	domain "github.com/BruksfildServices01/local-services/internal/domain/earnings"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type EarningsGormRepository struct {
	db *gorm.DB
}

func NewEarningsGormRepository(db *gorm.DB) *EarningsGormRepository {
	return &EarningsGormRepository{db: db}
}

func (r *EarningsGormRepository) completed(ctx context.Context, providerID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", providerID, string(booking.StatusCompleted))
}

func (r *EarningsGormRepository) SumCompleted(
	ctx context.Context,
	providerID uint,
	rng domain.Range,
) (decimal.Decimal, error) {
	q := r.completed(ctx, providerID)
	if rng.From != nil {
		q = q.Where("booking_date >= ?", *rng.From)
	}
	if rng.To != nil {
		q = q.Where("booking_date < ?", *rng.To)
	}

	var sum decimal.NullDecimal
	if err := q.Select("SUM(total_price)").Row().Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum earnings: %w", err)
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *EarningsGormRepository) RecentCompleted(
	ctx context.Context,
	providerID uint,
	limit int,
) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.completed(ctx, providerID).
		Preload("Customer").
		Preload("Service").
		Order("booking_date DESC, id DESC").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("recent completed bookings: %w", err)
	}
	return bookings, nil
}

var _ domain.Repository = (*EarningsGormRepository)(nil)
