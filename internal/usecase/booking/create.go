package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/EnamulBokshi/skillbridge-server/internal/audit"
	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Cache is the optional slot-hold lock; nil skips the fast-path check and
// leaves conflicts to the row-locked transaction.
type Cache interface {
	AcquireClaim(ctx context.Context, slotID string, ttl time.Duration) (bool, error)
	ReleaseClaim(ctx context.Context, slotID string) error
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SlotID    string
	StudentID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	cache   Cache
	audit   *audit.Dispatcher
	holdTTL time.Duration
}

func NewCreateBooking(
	repo domain.Repository,
	cache Cache,
	audit *audit.Dispatcher,
	holdTTL time.Duration,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		cache:   cache,
		audit:   audit,
		holdTTL: holdTTL,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	now := time.Now()

	slot, err := uc.repo.GetSlot(ctx, in.SlotID)
	if err != nil {
		return nil, err
	}

	if slot.IsBooked {
		return nil, httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed)
	}
	if slot.EndTime.Before(now) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotInPast)
	}

	if _, err := uc.repo.GetStudent(ctx, in.StudentID); err != nil {
		return nil, err
	}

	locked := false
	if uc.cache != nil {
		ok, err := uc.cache.AcquireClaim(ctx, slot.ID, uc.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed)
		}
		locked = true
	}

	b := &models.Booking{
		ID:        uuid.NewString(),
		SlotID:    slot.ID,
		StudentID: in.StudentID,
		Status:    string(domain.InitialStatus()),
	}

	// The repository re-checks the claimed flag and slot window under a row
	// lock; the checks above only give earlier, friendlier failures.
	if err := uc.repo.CreatePending(ctx, b, now); err != nil {
		if locked {
			_ = uc.cache.ReleaseClaim(ctx, slot.ID)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StudentID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
