package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/serenespa/booking-api/internal/domain/customer"
	"github.com/serenespa/booking-api/internal/httpresp"
	"github.com/serenespa/booking-api/internal/middleware"
	"github.com/serenespa/booking-api/internal/session"
)

type HomeHandler struct {
	customers domain.Repository
	sessions  session.Store
}

func NewHomeHandler(customers domain.Repository, sessions session.Store) *HomeHandler {
	return &HomeHandler{
		customers: customers,
		sessions:  sessions,
	}
}

// Index reflects login state so every page can switch between the login
// and profile buttons without its own session check.
func (h *HomeHandler) Index(c *gin.Context) {
	customerID, ok := middleware.SessionCustomer(c, h.sessions)
	if !ok {
		httpresp.OK(c, gin.H{"logged_in": false})
		return
	}

	cust, err := h.customers.GetByID(c.Request.Context(), customerID)
	if err != nil {
		// Stale session pointing at a deleted account.
		httpresp.OK(c, gin.H{"logged_in": false})
		return
	}

	httpresp.OK(c, gin.H{
		"logged_in": true,
		"customer": gin.H{
			"id":         cust.ID,
			"first_name": cust.FirstName,
			"username":   cust.Username,
		},
	})
}
