package booking

import (
	"context"

	"github.com/serenespa/booking-api/internal/audit"
	domain "github.com/serenespa/booking-api/internal/domain/booking"
	"github.com/serenespa/booking-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes a booking owned by customerID. A booking belonging to
// someone else is rejected, never silently removed.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	customerID uint,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.CustomerID != customerID {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			CustomerID: &customerID,
			Action:     "booking_deleted",
			Entity:     "booking",
			EntityID:   &bookingID,
		})
	}

	return nil
}
