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

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	TermsAccepted   bool
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Customer, error) {

	if in.Password != in.ConfirmPassword {
		return nil, httperr.ErrBusiness("passwords_do_not_match")
	}

	if !in.TermsAccepted {
		return nil, httperr.ErrBusiness("terms_not_accepted")
	}

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := uc.repo.UsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("username_taken")
	}

	taken, err = uc.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("email_taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &models.Customer{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	// The repository re-states both checks as unique indexes, so a
	// concurrent duplicate still comes back as a typed conflict.
	if err := uc.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			CustomerID: &c.ID,
			Action:     "customer_registered",
			Entity:     "customer",
			EntityID:   &c.ID,
		})
	}

	return c, nil
}
