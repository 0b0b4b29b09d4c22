package booking

import (
	"strings"
	"time"

	"github.com/serenespa/booking-api/internal/httperr"
)

// A slot is an exact date-time at one-hour resolution. Clients submit a
// calendar date plus an hour label ("10am", "1PM"); the two combine into a
// single timestamp.
const (
	DateLayout = "2006-01-02"
	slotLayout = "2006-01-02 3PM"
)

// ParseSlot combines a calendar date and an hour-of-day label into the slot
// timestamp. The label is uppercased first so "10am" and "10AM" both parse.
func ParseSlot(date, timeSlot string) (time.Time, error) {
	raw := strings.TrimSpace(date) + " " + strings.ToUpper(strings.TrimSpace(timeSlot))

	t, err := time.ParseInLocation(slotLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return t, nil
}

// SlotLabel renders a slot timestamp in the normalized form used on the
// booking page: lowercase, no leading zero ("9am", "1pm").
func SlotLabel(t time.Time) string {
	return strings.ToLower(t.Format("3PM"))
}

// DayBounds returns the half-open [start, end) range covering the given
// calendar date.
func DayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return day, day.AddDate(0, 0, 1), nil
}

// Today is the default date for the booking page.
func Today() string {
	return time.Now().Format(DateLayout)
}
