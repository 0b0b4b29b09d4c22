package customer

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/serenespa/booking-api/internal/audit"
	domain "github.com/serenespa/booking-api/internal/domain/customer"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

// PasswordMask is what the profile form shows in place of the stored
// password; receiving it back means the customer left the field untouched.
const PasswordMask = "********"

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	customerID uint,
	in UpdateProfileInput,
) (*models.Customer, error) {

	c, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Uniqueness is re-checked against every other account on edit.
	taken, err := uc.repo.UsernameTaken(ctx, username, customerID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("username_taken")
	}

	taken, err = uc.repo.EmailTaken(ctx, email, customerID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_taken")
	}

	c.FirstName = strings.TrimSpace(in.FirstName)
	c.LastName = strings.TrimSpace(in.LastName)
	c.Username = username
	c.Email = email

	if in.Password != "" && in.Password != PasswordMask {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		c.PasswordHash = string(hashed)
	}

	if err := uc.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			CustomerID: &c.ID,
			Action:     "profile_updated",
			Entity:     "customer",
			EntityID:   &c.ID,
		})
	}

	return c, nil
}
