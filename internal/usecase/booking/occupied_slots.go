package booking

import (
	"context"

	domain "github.com/serenespa/booking-api/internal/domain/booking"
)

type OccupiedSlots struct {
	repo domain.Repository
}

func NewOccupiedSlots(repo domain.Repository) *OccupiedSlots {
	return &OccupiedSlots{repo: repo}
}

// Execute returns the normalized hour labels already booked on the given
// date, in slot order. Both the booking page and the availability poll use
// this read.
func (uc *OccupiedSlots) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	start, end, err := domain.DayBounds(date)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListForDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(bookings))
	for _, b := range bookings {
		labels = append(labels, domain.SlotLabel(b.SlotTime))
	}

	return labels, nil
}
