package booking

import (
	"context"

	domain "github.com/serenespa/booking-api/internal/domain/booking"
	"github.com/serenespa/booking-api/internal/dto"
)

type ListCustomerBookings struct {
	repo domain.Repository
}

func NewListCustomerBookings(repo domain.Repository) *ListCustomerBookings {
	return &ListCustomerBookings{repo: repo}
}

// Execute returns the customer's bookings ordered by slot time ascending.
func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			ServiceType: b.ServiceType,
			Date:        b.SlotTime.Format(domain.DateLayout),
			TimeSlot:    domain.SlotLabel(b.SlotTime),
			SlotTime:    b.SlotTime,
		})
	}

	return out, nil
}
