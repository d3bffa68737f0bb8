package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/EnamulBokshi/skillbridge-server/internal/audit"
	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Mocks

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSlot(ctx context.Context, id string) (*models.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Slot), args.Error(1)
}

func (m *MockRepository) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockRepository) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) CreatePending(ctx context.Context, b *models.Booking, now time.Time) error {
	args := m.Called(ctx, b, now)
	return args.Error(0)
}

func (m *MockRepository) ApplyTransition(ctx context.Context, in domain.TransitionInput) (*models.Booking, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) ListBookings(ctx context.Context, f domain.Filter) ([]models.Booking, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockQueries) UpcomingForTutor(ctx context.Context, tutorID string, now time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, tutorID, now)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockQueries) UpcomingForStudent(ctx context.Context, studentID string, now time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, studentID, now)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockQueries) CompletedForTutor(ctx context.Context, tutorID string) ([]models.Booking, error) {
	args := m.Called(ctx, tutorID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockQueries) CompletedForStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockQueries) CountBookings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) AcquireClaim(ctx context.Context, slotID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, slotID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) ReleaseClaim(ctx context.Context, slotID string) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

type MockPayments struct {
	mock.Mock
}

func (m *MockPayments) CreateBookingPreference(ctx context.Context, b *models.Booking) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func futureSlot(price float64) *models.Slot {
	return &models.Slot{
		ID:        "slot-1",
		TutorID:   "tutor-1",
		SlotPrice: price,
		EndTime:   time.Now().Add(2 * time.Hour),
	}
}

// Create

func TestCreateBooking_Success(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetSlot", mock.Anything, "slot-1").Return(futureSlot(50), nil)
	repo.On("GetStudent", mock.Anything, "student-1").Return(&models.Student{ID: "student-1"}, nil)
	repo.On("CreatePending", mock.Anything, mock.AnythingOfType("*models.Booking"), mock.AnythingOfType("time.Time")).Return(nil)

	uc := NewCreateBooking(repo, nil, testDispatcher(), 30*time.Second)

	b, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: "slot-1", StudentID: "student-1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "slot-1", b.SlotID)
	assert.Equal(t, "student-1", b.StudentID)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	repo.AssertExpectations(t)
}

func TestCreateBooking_SlotAlreadyClaimed(t *testing.T) {
	slot := futureSlot(50)
	slot.IsBooked = true

	repo := &MockRepository{}
	repo.On("GetSlot", mock.Anything, "slot-1").Return(slot, nil)

	uc := NewCreateBooking(repo, nil, testDispatcher(), 30*time.Second)

	_, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: "slot-1", StudentID: "student-1"})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotAlreadyClaimed))
	repo.AssertNotCalled(t, "CreatePending", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_SlotInPast(t *testing.T) {
	slot := futureSlot(50)
	slot.EndTime = time.Now().Add(-time.Hour)

	repo := &MockRepository{}
	repo.On("GetSlot", mock.Anything, "slot-1").Return(slot, nil)

	uc := NewCreateBooking(repo, nil, testDispatcher(), 30*time.Second)

	_, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: "slot-1", StudentID: "student-1"})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotInPast))
}

func TestCreateBooking_StudentNotFound(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetSlot", mock.Anything, "slot-1").Return(futureSlot(50), nil)
	repo.On("GetStudent", mock.Anything, "ghost").Return(nil, httperr.ErrBusiness(httperr.CodeStudentNotFound))

	uc := NewCreateBooking(repo, nil, testDispatcher(), 30*time.Second)

	_, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: "slot-1", StudentID: "ghost"})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeStudentNotFound))
	repo.AssertNotCalled(t, "CreatePending", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_HoldDenied(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetSlot", mock.Anything, "slot-1").Return(futureSlot(50), nil)
	repo.On("GetStudent", mock.Anything, "student-1").Return(&models.Student{ID: "student-1"}, nil)

	cache := &MockCache{}
	cache.On("AcquireClaim", mock.Anything, "slot-1", 30*time.Second).Return(false, nil)

	uc := NewCreateBooking(repo, cache, testDispatcher(), 30*time.Second)

	_, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: "slot-1", StudentID: "student-1"})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotAlreadyClaimed))
	repo.AssertNotCalled(t, "CreatePending", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestCreateBooking_HoldReleasedWhenInsertFails(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetSlot", mock.Anything, "slot-1").Return(futureSlot(50), nil)
	repo.On("GetStudent", mock.Anything, "student-1").Return(&models.Student{ID: "student-1"}, nil)
	repo.On("CreatePending", mock.Anything, mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed))

	cache := &MockCache{}
	cache.On("AcquireClaim", mock.Anything, "slot-1", 30*time.Second).Return(true, nil)
	cache.On("ReleaseClaim", mock.Anything, "slot-1").Return(nil)

	uc := NewCreateBooking(repo, cache, testDispatcher(), 30*time.Second)

	_, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: "slot-1", StudentID: "student-1"})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotAlreadyClaimed))
	cache.AssertExpectations(t)
}

// Confirm

func TestConfirmBooking_CreditsEarningsAndClaimsSlot(t *testing.T) {
	pending := &models.Booking{
		ID:     "b-1",
		SlotID: "slot-1",
		Status: string(domain.StatusPending),
		Slot:   models.Slot{ID: "slot-1", SlotPrice: 75},
	}
	confirmed := &models.Booking{ID: "b-1", Status: string(domain.StatusConfirmed)}

	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(pending, nil)
	repo.On("ApplyTransition", mock.Anything, domain.TransitionInput{
		BookingID:     "b-1",
		From:          domain.StatusPending,
		To:            domain.StatusConfirmed,
		EarningsDelta: 75,
		SetClaimed:    boolPtr(true),
	}).Return(confirmed, nil)

	uc := NewConfirmBooking(repo, nil, testDispatcher())

	b, err := uc.Execute(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	repo.AssertExpectations(t)
}

func TestConfirmBooking_AlreadyConfirmed(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusConfirmed),
	}, nil)

	uc := NewConfirmBooking(repo, nil, testDispatcher())

	_, err := uc.Execute(context.Background(), "b-1")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

func TestConfirmBooking_RaceLosesToConcurrentTransition(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusPending),
		Slot:   models.Slot{SlotPrice: 40},
	}, nil)
	repo.On("ApplyTransition", mock.Anything, mock.Anything).
		Return(nil, httperr.ErrBusiness(httperr.CodeTransitionConflict))

	uc := NewConfirmBooking(repo, nil, testDispatcher())

	_, err := uc.Execute(context.Background(), "b-1")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeTransitionConflict))
}

func TestConfirmBooking_PaymentFailureDoesNotFailConfirm(t *testing.T) {
	confirmed := &models.Booking{ID: "b-1", Status: string(domain.StatusConfirmed)}

	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusPending),
		Slot:   models.Slot{SlotPrice: 40},
	}, nil)
	repo.On("ApplyTransition", mock.Anything, mock.Anything).Return(confirmed, nil)

	pay := &MockPayments{}
	pay.On("CreateBookingPreference", mock.Anything, confirmed).
		Return("", errors.New("gateway down"))

	uc := NewConfirmBooking(repo, pay, testDispatcher())

	b, err := uc.Execute(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	pay.AssertExpectations(t)
}

// Cancel

func TestCancelBooking_ConfirmedRefundsEarnings(t *testing.T) {
	cancelled := &models.Booking{ID: "b-1", Status: string(domain.StatusCancelled)}

	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusConfirmed),
		Slot:   models.Slot{SlotPrice: 60},
	}, nil)
	repo.On("ApplyTransition", mock.Anything, domain.TransitionInput{
		BookingID:     "b-1",
		From:          domain.StatusConfirmed,
		To:            domain.StatusCancelled,
		EarningsDelta: -60,
		SetClaimed:    boolPtr(false),
	}).Return(cancelled, nil)

	uc := NewCancelBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	repo.AssertExpectations(t)
}

func TestCancelBooking_PendingLeavesLedgerAlone(t *testing.T) {
	cancelled := &models.Booking{ID: "b-1", Status: string(domain.StatusCancelled)}

	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusPending),
		Slot:   models.Slot{SlotPrice: 60},
	}, nil)
	repo.On("ApplyTransition", mock.Anything, domain.TransitionInput{
		BookingID:     "b-1",
		From:          domain.StatusPending,
		To:            domain.StatusCancelled,
		EarningsDelta: 0,
		SetClaimed:    boolPtr(false),
	}).Return(cancelled, nil)

	uc := NewCancelBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), "b-1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCancelBooking_CompletedIsFinal(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusCompleted),
	}, nil)

	uc := NewCancelBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), "b-1")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

// Reject / Complete

func TestRejectBooking_ReleasesSlot(t *testing.T) {
	rejected := &models.Booking{ID: "b-1", Status: string(domain.StatusRejected)}

	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusPending),
		Slot:   models.Slot{SlotPrice: 60},
	}, nil)
	repo.On("ApplyTransition", mock.Anything, domain.TransitionInput{
		BookingID:  "b-1",
		From:       domain.StatusPending,
		To:         domain.StatusRejected,
		SetClaimed: boolPtr(false),
	}).Return(rejected, nil)

	uc := NewRejectBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), b.Status)
	repo.AssertExpectations(t)
}

func TestCompleteBooking_KeepsLedgerAndClaim(t *testing.T) {
	completed := &models.Booking{ID: "b-1", Status: string(domain.StatusCompleted)}

	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusConfirmed),
		Slot:   models.Slot{SlotPrice: 60},
	}, nil)
	repo.On("ApplyTransition", mock.Anything, domain.TransitionInput{
		BookingID: "b-1",
		From:      domain.StatusConfirmed,
		To:        domain.StatusCompleted,
	}).Return(completed, nil)

	uc := NewCompleteBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), "b-1")

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)
	repo.AssertExpectations(t)
}

func TestCompleteBooking_RequiresConfirmed(t *testing.T) {
	repo := &MockRepository{}
	repo.On("GetBooking", mock.Anything, "b-1").Return(&models.Booking{
		ID:     "b-1",
		Status: string(domain.StatusPending),
	}, nil)

	uc := NewCompleteBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), "b-1")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

// Expire / reads

func TestExpirePastBookings(t *testing.T) {
	repo := &MockRepository{}
	repo.On("DeleteExpiredPending", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	uc := NewExpirePastBookings(repo)

	removed, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestListBookings_BuildsPaginationMeta(t *testing.T) {
	f := domain.Filter{Status: string(domain.StatusPending)}
	f.Page.Page = 2
	f.Page.Limit = 10

	queries := &MockQueries{}
	queries.On("ListBookings", mock.Anything, f).
		Return([]models.Booking{{ID: "b-1"}, {ID: "b-2"}}, int64(25), nil)

	uc := NewListBookings(queries)

	page, err := uc.Execute(context.Background(), f)

	assert.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(25), page.Pagination.TotalRecords)
	assert.Equal(t, int64(3), page.Pagination.TotalPages)
	assert.Equal(t, 2, page.Pagination.Page)
}

func TestBookingStats(t *testing.T) {
	queries := &MockQueries{}
	queries.On("CountBookings", mock.Anything).Return(int64(7), nil)
	queries.On("CountByStatus", mock.Anything).Return([]domain.StatusCount{
		{Status: "PENDING", Count: 4},
		{Status: "CONFIRMED", Count: 3},
	}, nil)

	uc := NewBookingStats(queries)

	stats, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalBookings)
	assert.Len(t, stats.BookingsByStatus, 2)
}

func TestBookingViews_DispatchesByParty(t *testing.T) {
	queries := &MockQueries{}
	queries.On("UpcomingForStudent", mock.Anything, "student-1", mock.AnythingOfType("time.Time")).
		Return([]models.Booking{{ID: "b-1"}}, nil)
	queries.On("CompletedForTutor", mock.Anything, "tutor-1").
		Return([]models.Booking{{ID: "b-2"}}, nil)

	uc := NewBookingViews(queries)

	upcoming, err := uc.Upcoming(context.Background(), PartyStudent, "student-1")
	assert.NoError(t, err)
	assert.Len(t, upcoming, 1)

	completed, err := uc.Completed(context.Background(), PartyTutor, "tutor-1")
	assert.NoError(t, err)
	assert.Len(t, completed, 1)

	queries.AssertExpectations(t)
}
