package booking

import (
	"context"

	"github.com/EnamulBokshi/skillbridge-server/internal/audit"
	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

type RejectBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRejectBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RejectBooking {
	return &RejectBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RejectBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := applyEvent(ctx, uc.repo, bookingID, domain.EventReject)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_rejected",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
