package booking

import (
	"testing"
	"time"

	"github.com/serenespa/booking-api/internal/httperr"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		timeSlot string
		wantHour int
	}{
		{"morning lowercase", "2024-06-01", "10am", 10},
		{"morning uppercase", "2024-06-01", "10AM", 10},
		{"afternoon", "2024-06-01", "1pm", 13},
		{"noon", "2024-06-01", "12pm", 12},
		{"midnight", "2024-06-01", "12am", 0},
		{"whitespace", " 2024-06-01 ", " 9am ", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlot(tt.date, tt.timeSlot)
			if err != nil {
				t.Fatalf("ParseSlot(%q, %q): %v", tt.date, tt.timeSlot, err)
			}
			if got.Hour() != tt.wantHour {
				t.Errorf("hour = %d, want %d", got.Hour(), tt.wantHour)
			}
			if got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
				t.Errorf("date = %v, want 2024-06-01", got)
			}
			if got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("slot not at hour resolution: %v", got)
			}
		})
	}
}

func TestParseSlotInvalid(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		timeSlot string
	}{
		{"garbage date", "not-a-date", "10am"},
		{"month out of range", "2024-13-01", "10am"},
		{"missing meridiem", "2024-06-01", "10"},
		{"word slot", "2024-06-01", "noon"},
		{"hour out of range", "2024-06-01", "25pm"},
		{"empty date", "", "10am"},
		{"empty slot", "2024-06-01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSlot(tt.date, tt.timeSlot)
			if err == nil {
				t.Fatalf("ParseSlot(%q, %q): expected error", tt.date, tt.timeSlot)
			}
			if !httperr.IsBusiness(err, "invalid_date_or_time") {
				t.Errorf("expected invalid_date_or_time, got %v", err)
			}
		})
	}
}

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{9, "9am"},
		{10, "10am"},
		{13, "1pm"},
		{12, "12pm"},
		{0, "12am"},
		{23, "11pm"},
	}

	for _, tt := range tests {
		ts := time.Date(2024, 6, 1, tt.hour, 0, 0, 0, time.Local)
		if got := SlotLabel(ts); got != tt.want {
			t.Errorf("SlotLabel(hour %d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestParseSlotRoundTrip(t *testing.T) {
	slot, err := ParseSlot("2024-06-01", "10AM")
	if err != nil {
		t.Fatal(err)
	}
	if got := SlotLabel(slot); got != "10am" {
		t.Errorf("label = %q, want normalized %q", got, "10am")
	}
}

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if start.Hour() != 0 || start.Day() != 1 {
		t.Errorf("start = %v, want midnight 2024-06-01", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("end = %v, want start + 1 day", end)
	}

	slot, _ := ParseSlot("2024-06-01", "11pm")
	if slot.Before(start) || !slot.Before(end) {
		t.Errorf("11pm slot %v outside day bounds [%v, %v)", slot, start, end)
	}

	if _, _, err := DayBounds("junk"); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Errorf("expected invalid_date_or_time, got %v", err)
	}
}
