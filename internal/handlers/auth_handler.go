package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/config"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/httpresp"
	"github.com/serenespa/booking-api/internal/session"
	ucCustomer "github.com/serenespa/booking-api/internal/usecase/customer"
	"github.com/serenespa/booking-api/internal/validators"
)

type AuthHandler struct {
	register     *ucCustomer.Register
	authenticate *ucCustomer.Authenticate
	sessions     session.Store
	config       *config.Config
}

func NewAuthHandler(
	register *ucCustomer.Register,
	authenticate *ucCustomer.Authenticate,
	sessions session.Store,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		authenticate: authenticate,
		sessions:     sessions,
		config:       cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName       string `form:"fname" json:"fname" binding:"required"`
	LastName        string `form:"lname" json:"lname" binding:"required"`
	Username        string `form:"uname" json:"uname" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`

	// Checkbox field; any non-empty value counts as accepted.
	Terms string `form:"terms" json:"terms"`
}

type LoginRequest struct {
	Username string `form:"uname" json:"uname" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", businessMessages["invalid_email_domain"])
		return
	}

	cust, err := h.register.Execute(c.Request.Context(), ucCustomer.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		Email:           email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		TermsAccepted:   req.Terms != "",
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Registration successful! Please login.",
		"customer": gin.H{
			"id":         cust.ID,
			"first_name": cust.FirstName,
			"last_name":  cust.LastName,
			"username":   cust.Username,
			"email":      cust.Email,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cust, err := h.authenticate.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), cust.ID)
	if err != nil {
		httperr.Internal(c, "session_error", "Could not establish a session.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		session.CookieName,
		token,
		int(h.config.SessionTTL().Seconds()),
		"/",
		"",
		false,
		true,
	)

	httpresp.OK(c, gin.H{
		"message": "Login successful!",
		"customer": gin.H{
			"id":         cust.ID,
			"first_name": cust.FirstName,
			"last_name":  cust.LastName,
			"username":   cust.Username,
			"email":      cust.Email,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	httpresp.OK(c, gin.H{"message": "You have been logged out."})
}
