package customer

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/serenespa/booking-api/internal/domain/customer"
	"github.com/serenespa/booking-api/internal/httperr"
	"github.com/serenespa/booking-api/internal/models"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute verifies the supplied credentials against the stored hash. An
// unknown username and a wrong password report the same code, so the
// response never reveals which accounts exist.
func (uc *Authenticate) Execute(
	ctx context.Context,
	username string,
	password string,
) (*models.Customer, error) {

	c, err := uc.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(c.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return c, nil
}
