package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/serenespa/booking-api/internal/domain/booking"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/httpresp"
	"github.com/serenespa/booking-api/internal/middleware"
	ucBooking "github.com/serenespa/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create        *ucBooking.CreateBooking
	deleteBooking *ucBooking.DeleteBooking
	occupied      *ucBooking.OccupiedSlots
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	deleteBooking *ucBooking.DeleteBooking,
	occupied *ucBooking.OccupiedSlots,
) *BookingHandler {
	return &BookingHandler{
		create:        create,
		deleteBooking: deleteBooking,
		occupied:      occupied,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceType string `form:"service_type" json:"service_type" binding:"required"`
	Date        string `form:"selected_date" json:"selected_date" binding:"required"`
	TimeSlot    string `form:"time_slot" json:"time_slot" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

// Availability renders the booking page data: the selected date (today by
// default) and the slots already taken on it.
func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.DefaultQuery("selected_date", domain.Today())

	slots, err := h.occupied.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"selected_date": date,
		"booked_slots":  slots,
	})
}

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:  customerID,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Booking successfully created for " + domain.SlotLabel(b.SlotTime) +
			" on " + b.SlotTime.Format(domain.DateLayout) + "!",
		"booking": gin.H{
			"id":           b.ID,
			"service_type": b.ServiceType,
			"slot_time":    b.SlotTime,
			"time_slot":    domain.SlotLabel(b.SlotTime),
		},
	})
}

// BookedSlots answers the asynchronous availability poll from the booking
// page. Same read as Availability, bare payload.
func (h *BookingHandler) BookedSlots(c *gin.Context) {
	date := c.DefaultQuery("selected_date", domain.Today())

	slots, err := h.occupied.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booked_slots": slots})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking id.")
		return
	}

	if err := h.deleteBooking.Execute(c.Request.Context(), uint(id), customerID); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Booking deleted successfully!"})
}
