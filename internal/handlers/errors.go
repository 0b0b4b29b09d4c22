package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/httperr"
)

var businessMessages = map[string]string{
	"passwords_do_not_match": "Passwords do not match. Please try again.",
	"terms_not_accepted":     "You must agree to the Terms and Conditions and Privacy Policy.",
	"invalid_email_domain":   "The email domain does not appear to be valid.",
	"username_taken":         "That username is already registered. Please login instead.",
	"email_taken":            "That email is already registered. Please login instead.",
	"invalid_credentials":    "Invalid credentials. Please try again.",
	"unauthenticated":        "Please log in first.",
	"invalid_date_or_time":   "Invalid date or time format.",
	"slot_taken":             "That time slot is no longer available. Please choose another time.",
	"booking_not_found":      "Booking not found.",
	"customer_not_found":     "User not found.",
	"forbidden":              "This booking belongs to another account.",
}

// writeError turns a use-case error into the HTTP response. Every business
// code maps to a 4xx with its message; anything else is an opaque 500.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	msg, ok := businessMessages[be.Code]
	if !ok {
		msg = "Request could not be completed."
	}

	switch be.Code {
	case "invalid_credentials", "unauthenticated":
		httperr.Unauthorized(c, be.Code, msg)
	case "forbidden":
		httperr.Forbidden(c, be.Code, msg)
	case "booking_not_found", "customer_not_found":
		httperr.NotFound(c, be.Code, msg)
	case "username_taken", "email_taken", "slot_taken":
		httperr.Conflict(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}
