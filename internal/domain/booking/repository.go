package booking

import (
	"context"
	"time"

	"github.com/serenespa/booking-api/internal/models"
)

type Repository interface {
	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SlotOccupied(
		ctx context.Context,
		slot time.Time,
	) (bool, error)

	// -------- Booking (lookup / delete) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Queries --------
	ListForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)
}
