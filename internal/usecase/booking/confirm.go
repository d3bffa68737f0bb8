package booking

import (
	"context"
	"log"

	"github.com/EnamulBokshi/skillbridge-server/internal/audit"
	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Payments creates a checkout link for a confirmed booking. Optional; nil
// disables it.
type Payments interface {
	CreateBookingPreference(ctx context.Context, b *models.Booking) (string, error)
}

type ConfirmBooking struct {
	repo     domain.Repository
	payments Payments
	audit    *audit.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	payments Payments,
	audit *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:     repo,
		payments: payments,
		audit:    audit,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := applyEvent(ctx, uc.repo, bookingID, domain.EventConfirm)
	if err != nil {
		return nil, err
	}

	// Checkout creation is best effort and happens after the transaction
	// committed; a payment failure must not roll back the confirmation.
	if uc.payments != nil {
		if _, err := uc.payments.CreateBookingPreference(ctx, b); err != nil {
			log.Printf("payment preference failed for booking %s: %v", b.ID, err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
