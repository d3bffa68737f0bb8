package booking

import (
	"context"
	"time"

	"github.com/EnamulBokshi/skillbridge-server/internal/models"
	"github.com/EnamulBokshi/skillbridge-server/internal/pagination"
)

// TransitionInput describes one atomic lifecycle step. From is the status the
// caller observed; the repository must re-check it inside the transaction and
// fail with transition_conflict when it no longer matches.
type TransitionInput struct {
	BookingID string
	From      Status
	To        Status

	// EarningsDelta is applied to the slot's tutor inside the same
	// transaction. Zero means the ledger is untouched.
	EarningsDelta float64

	// SetClaimed, when non-nil, writes the slot's is_booked flag.
	SetClaimed *bool
}

type Filter struct {
	StudentID string
	TutorID   string
	SlotID    string
	Status    string
	Date      string // YYYY-MM-DD, matched against booking creation day

	Page pagination.Options
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Repository is the write-path contract of the lifecycle manager.
type Repository interface {
	GetSlot(ctx context.Context, id string) (*models.Slot, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)

	// CreatePending inserts b and claims its slot in one transaction,
	// re-checking the claimed flag and the slot end time under a row lock.
	CreatePending(ctx context.Context, b *models.Booking, now time.Time) error

	ApplyTransition(ctx context.Context, in TransitionInput) (*models.Booking, error)

	// DeleteExpiredPending removes PENDING bookings whose slot has already
	// ended and releases their slots. Returns the number removed.
	DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error)
}

// Queries is the read-only reporting contract; it never takes locks.
type Queries interface {
	ListBookings(ctx context.Context, f Filter) ([]models.Booking, int64, error)

	UpcomingForTutor(ctx context.Context, tutorID string, now time.Time) ([]models.Booking, error)
	UpcomingForStudent(ctx context.Context, studentID string, now time.Time) ([]models.Booking, error)
	CompletedForTutor(ctx context.Context, tutorID string) ([]models.Booking, error)
	CompletedForStudent(ctx context.Context, studentID string) ([]models.Booking, error)

	CountBookings(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
