package customer

import (
	"context"

	"github.com/serenespa/booking-api/internal/audit"
	domain "github.com/serenespa/booking-api/internal/domain/customer"
)

type DeleteProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteProfile {
	return &DeleteProfile{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the account. The bookings foreign key is declared
// ON DELETE CASCADE, so every booking the customer owns goes with it.
// Clearing the session is the caller's job.
func (uc *DeleteProfile) Execute(
	ctx context.Context,
	customerID uint,
) error {

	if err := uc.repo.DeleteCustomer(ctx, customerID); err != nil {
		return err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "profile_deleted",
			Entity:   "customer",
			EntityID: &customerID,
		})
	}

	return nil
}
