package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/session"
)

const ContextCustomerID = "customerID"

// RequireSession resolves the session cookie into a customer id and stores
// it in the request context. Requests without a valid session are rejected.
func RequireSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		customerID, ok, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_store_error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set(ContextCustomerID, customerID)

		c.Next()
	}
}

// SessionCustomer is the non-aborting variant for public routes that only
// reflect login state.
func SessionCustomer(c *gin.Context, sessions session.Store) (uint, bool) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		return 0, false
	}

	customerID, ok, err := sessions.Get(c.Request.Context(), token)
	if err != nil || !ok {
		return 0, false
	}
	return customerID, true
}
