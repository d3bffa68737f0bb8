package booking

import (
	"context"
	"time"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

type Party string

const (
	PartyTutor   Party = "tutor"
	PartyStudent Party = "student"
)

// BookingViews serves the per-party projections. "Upcoming" compares the
// slot's end time against now, not the booking's creation time.
type BookingViews struct {
	queries domain.Queries
}

func NewBookingViews(queries domain.Queries) *BookingViews {
	return &BookingViews{queries: queries}
}

func (uc *BookingViews) Upcoming(
	ctx context.Context,
	party Party,
	id string,
) ([]models.Booking, error) {

	now := time.Now()
	if party == PartyStudent {
		return uc.queries.UpcomingForStudent(ctx, id, now)
	}
	return uc.queries.UpcomingForTutor(ctx, id, now)
}

func (uc *BookingViews) Completed(
	ctx context.Context,
	party Party,
	id string,
) ([]models.Booking, error) {

	if party == PartyStudent {
		return uc.queries.CompletedForStudent(ctx, id)
	}
	return uc.queries.CompletedForTutor(ctx, id)
}
