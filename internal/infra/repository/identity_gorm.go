package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/local-services/internal/domain/identity"
	"github.com/BruksfildServices01/local-services/internal/httperr"
	"github.com/BruksfildServices01/local-services/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

func (r *IdentityGormRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *IdentityGormRepository) CreateAccount(
	ctx context.Context,
	user *models.User,
	businessName string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeEmailExists)
			}
			return fmt.Errorf("create user: %w", err)
		}

		switch user.Role {
		case models.RoleProvider:
			if businessName == "" {
				businessName = user.FullName
			}
			p := models.Provider{UserID: user.ID, Name: user.FullName, BusinessName: businessName}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("create provider profile: %w", err)
			}
		case models.RoleCustomer:
			c := models.Customer{UserID: user.ID, Name: user.FullName}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("create customer profile: %w", err)
			}
		default:
			return httperr.ErrBusiness(httperr.CodeInvalidRole)
		}
		return nil
	})
}

func (r *IdentityGormRepository) GetActiveUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeUserNotFound)
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetActiveUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&user).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeUserNotFound)
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetProviderByUserID(ctx context.Context, userID uint) (*models.Provider, error) {
	var p models.Provider
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeProviderNotFound)
	}
	return &p, nil
}

func (r *IdentityGormRepository) GetCustomerByUserID(ctx context.Context, userID uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, notFoundAs(err, httperr.CodeCustomerNotFound)
	}
	return &c, nil
}

var _ domain.Repository = (*IdentityGormRepository)(nil)
