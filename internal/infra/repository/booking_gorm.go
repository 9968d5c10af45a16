package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/local-services/internal/domain/booking"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Parties
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomer(ctx context.Context, customerID uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, customerID).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeCustomerNotFound)
	}
	return &c, nil
}

func (r *BookingGormRepository) GetProviderContact(
	ctx context.Context,
	providerID uint,
) (*domain.ProviderContact, error) {
	var contact domain.ProviderContact
	res := r.db.WithContext(ctx).
		Table("providers").
		Select("providers.id, providers.name, providers.phone, users.email").
		Joins("JOIN users ON users.id = providers.user_id").
		Where("providers.id = ?", providerID).
		Limit(1).
		Scan(&contact)
	if res.Error != nil {
		return nil, fmt.Errorf("load provider contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
	}
	return &contact, nil
}

func (r *BookingGormRepository) GetBookableService(ctx context.Context, serviceID uint) (*models.Service, error) {
	var s models.Service
	// Shared lock: blocks a concurrent catalogue delete until this
	// booking commits.
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ? AND is_active = ?", serviceID, true).
		First(&s).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeServiceNotFound)
	}
	return &s, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit("Customer", "Provider", "Service").Create(b).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) UpdateBookingStatus(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"status":     b.Status,
			"updated_at": b.UpdatedAt,
		}).Error; err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) GetProviderBooking(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {
	var b models.Booking
	if err := r.withParties(ctx).
		Where("id = ? AND provider_id = ?", bookingID, providerID).
		First(&b).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeBookingNotFound)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListProviderBookings(
	ctx context.Context,
	providerID uint,
	status string,
) ([]models.Booking, error) {
	q := r.withParties(ctx).Where("provider_id = ?", providerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order(newestFirst).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list provider bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListCustomerBookings(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.withParties(ctx).
		Where("customer_id = ?", customerID).
		Order(newestFirst).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}
	return bookings, nil
}

const newestFirst = "booking_date DESC, booking_time DESC, id DESC"

func (r *BookingGormRepository) withParties(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Provider").
		Preload("Service")
}

var _ domain.Repository = (*BookingGormRepository)(nil)
