package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	ServiceType string    `json:"service_type"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	SlotTime    time.Time `json:"slot_time"`
}
