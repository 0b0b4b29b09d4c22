package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/serenespa/booking-api/internal/domain/customer"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/httpresp"
	"github.com/serenespa/booking-api/internal/middleware"
	"github.com/serenespa/booking-api/internal/session"
	ucBooking "github.com/serenespa/booking-api/internal/usecase/booking"
	ucCustomer "github.com/serenespa/booking-api/internal/usecase/customer"
)

type ProfileHandler struct {
	customers     domain.Repository
	updateProfile *ucCustomer.UpdateProfile
	deleteProfile *ucCustomer.DeleteProfile
	listBookings  *ucBooking.ListCustomerBookings
	sessions      session.Store
}

func NewProfileHandler(
	customers domain.Repository,
	updateProfile *ucCustomer.UpdateProfile,
	deleteProfile *ucCustomer.DeleteProfile,
	listBookings *ucBooking.ListCustomerBookings,
	sessions session.Store,
) *ProfileHandler {
	return &ProfileHandler{
		customers:     customers,
		updateProfile: updateProfile,
		deleteProfile: deleteProfile,
		listBookings:  listBookings,
		sessions:      sessions,
	}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	FirstName string `form:"fname" json:"fname" binding:"required"`
	LastName  string `form:"lname" json:"lname" binding:"required"`
	Username  string `form:"uname" json:"uname" binding:"required"`
	Email     string `form:"email" json:"email" binding:"required,email"`

	// Empty or masked means "keep the current password".
	Password string `form:"password" json:"password"`
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	cust, err := h.customers.GetByID(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err)
		return
	}

	bookings, err := h.listBookings.Execute(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"customer": gin.H{
			"id":         cust.ID,
			"first_name": cust.FirstName,
			"last_name":  cust.LastName,
			"username":   cust.Username,
			"email":      cust.Email,
		},
		"bookings": bookings,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cust, err := h.updateProfile.Execute(c.Request.Context(), customerID, ucCustomer.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Profile updated successfully!",
		"customer": gin.H{
			"id":         cust.ID,
			"first_name": cust.FirstName,
			"last_name":  cust.LastName,
			"username":   cust.Username,
			"email":      cust.Email,
		},
	})
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	if err := h.deleteProfile.Execute(c.Request.Context(), customerID); err != nil {
		writeError(c, err)
		return
	}

	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	httpresp.OK(c, gin.H{"message": "Your profile has been deleted."})
}
