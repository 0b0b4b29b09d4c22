package booking

import (
	"context"

	"github.com/serenespa/booking-api/internal/audit"
	domain "github.com/serenespa/booking-api/internal/domain/booking"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID  uint
	ServiceType string

	Date     string
	TimeSlot string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	slot, err := domain.ParseSlot(in.Date, in.TimeSlot)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check. Not atomic against a concurrent request for the
	// same slot; the unique index behind CreateBooking is.
	occupied, err := uc.repo.SlotOccupied(ctx, slot)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	b := &models.Booking{
		CustomerID:  in.CustomerID,
		ServiceType: in.ServiceType,
		SlotTime:    slot,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			CustomerID: &in.CustomerID,
			Action:     "booking_created",
			Entity:     "booking",
			EntityID:   &b.ID,
		})
	}

	return b, nil
}
