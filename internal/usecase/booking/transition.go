package booking

import (
	"context"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// applyEvent resolves an event against the transition table and hands the
// repository one conditional step: the update only lands if the booking is
// still in the status read here, so a retried confirm can never double-apply
// its earnings delta.
func applyEvent(
	ctx context.Context,
	repo domain.Repository,
	bookingID string,
	ev domain.Event,
) (*models.Booking, error) {

	current, err := repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	from := domain.Status(current.Status)
	to, err := domain.Next(from, ev)
	if err != nil {
		return nil, err
	}

	in := domain.TransitionInput{
		BookingID: bookingID,
		From:      from,
		To:        to,
	}

	switch ev {
	case domain.EventConfirm:
		in.EarningsDelta = current.Slot.SlotPrice
		in.SetClaimed = boolPtr(true)
	case domain.EventCancel:
		// Earnings were only captured at confirm time; cancelling a booking
		// that never got there must not drive the ledger negative.
		if from == domain.StatusConfirmed {
			in.EarningsDelta = -current.Slot.SlotPrice
		}
		in.SetClaimed = boolPtr(false)
	case domain.EventReject:
		in.SetClaimed = boolPtr(false)
	case domain.EventComplete:
		// No ledger or claim change; the session simply happened.
	}

	return repo.ApplyTransition(ctx, in)
}

func boolPtr(b bool) *bool {
	return &b
}
