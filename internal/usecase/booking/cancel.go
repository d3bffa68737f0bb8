package booking

import (
	"context"

	"github.com/EnamulBokshi/skillbridge-server/internal/audit"
	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := applyEvent(ctx, uc.repo, bookingID, domain.EventCancel)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
