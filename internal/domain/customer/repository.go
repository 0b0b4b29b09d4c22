package customer

import (
	"context"

	"github.com/serenespa/booking-api/internal/models"
)

type Repository interface {
	CreateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetByUsername(
		ctx context.Context,
		username string,
	) (*models.Customer, error)

	// -------- Uniqueness (excludeID skips the customer being edited) --------
	UsernameTaken(
		ctx context.Context,
		username string,
		excludeID uint,
	) (bool, error)

	EmailTaken(
		ctx context.Context,
		email string,
		excludeID uint,
	) (bool, error)

	UpdateCustomer(
		ctx context.Context,
		c *models.Customer,
	) error

	// DeleteCustomer removes the account; the bookings foreign key cascades.
	DeleteCustomer(
		ctx context.Context,
		id uint,
	) error
}
