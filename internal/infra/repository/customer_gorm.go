package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/serenespa/booking-api/internal/domain/customer"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// customerConflict maps a unique violation on the customers table to the
// column that caused it. Both username and email carry unique indexes, so a
// concurrent insert or edit resolves to a typed conflict, never a 500.
func customerConflict(err error) error {
	pgErr, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return httperr.ErrBusiness("email_taken")
	}
	return httperr.ErrBusiness("username_taken")
}

func (r *CustomerGormRepository) CreateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return customerConflict(err)
	}
	return nil
}

func (r *CustomerGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	return &c, nil
}

func (r *CustomerGormRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&c).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return nil, err
	}

	return &c, nil
}

func (r *CustomerGormRepository) UsernameTaken(
	ctx context.Context,
	username string,
	excludeID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CustomerGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	excludeID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CustomerGormRepository) UpdateCustomer(
	ctx context.Context,
	c *models.Customer,
) error {

	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return customerConflict(err)
	}
	return nil
}

func (r *CustomerGormRepository) DeleteCustomer(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("customer_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*CustomerGormRepository)(nil)
