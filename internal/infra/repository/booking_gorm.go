package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// sortColumns whitelists the order-by targets accepted from the query string.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
	"status":     "status",
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	id string,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) GetStudent(
	ctx context.Context,
	id string,
) (*models.Student, error) {

	var student models.Student
	if err := r.db.WithContext(ctx).
		First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeStudentNotFound)
		}
		return nil, err
	}
	return &student, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Create (claim race closed under row lock)
// --------------------------------------------------

func (r *BookingGormRepository) CreatePending(
	ctx context.Context,
	b *models.Booking,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ?", b.SlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeSlotNotFound)
			}
			return err
		}

		if slot.IsBooked {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed)
		}
		if slot.EndTime.Before(now) {
			return httperr.ErrBusiness(httperr.CodeSlotInPast)
		}

		if err := tx.Create(b).Error; err != nil {
			if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed)
			}
			return err
		}

		return tx.Model(&models.Slot{}).
			Where("id = ?", slot.ID).
			Update("is_booked", true).Error
	})
}

// --------------------------------------------------
// Transitions (conditional on expected prior status)
// --------------------------------------------------

func (r *BookingGormRepository) ApplyTransition(
	ctx context.Context,
	in domain.TransitionInput,
) (*models.Booking, error) {

	var updated models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", in.BookingID, string(in.From)).
			Update("status", string(in.To))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the booking is gone or a concurrent transition won.
			var count int64
			if err := tx.Model(&models.Booking{}).
				Where("id = ?", in.BookingID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return httperr.ErrBusiness(httperr.CodeBookingNotFound)
			}
			return httperr.ErrBusiness(httperr.CodeTransitionConflict)
		}

		if err := tx.Preload("Slot").
			First(&updated, "id = ?", in.BookingID).Error; err != nil {
			return err
		}

		if in.SetClaimed != nil {
			if err := tx.Model(&models.Slot{}).
				Where("id = ?", updated.SlotID).
				Update("is_booked", *in.SetClaimed).Error; err != nil {
				return err
			}
			updated.Slot.IsBooked = *in.SetClaimed
		}

		if in.EarningsDelta != 0 {
			res := tx.Model(&models.TutorProfile{}).
				Where("id = ?", updated.Slot.TutorID).
				Update("total_earned", gorm.Expr("total_earned + ?", in.EarningsDelta))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness(httperr.CodeTutorNotFound)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// --------------------------------------------------
// Expiry sweep
// --------------------------------------------------

func (r *BookingGormRepository) DeleteExpiredPending(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	var removed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var expired []models.Booking
		if err := tx.
			Joins("JOIN slots ON slots.id = bookings.slot_id").
			Where("bookings.status = ? AND slots.end_time < ?", string(domain.StatusPending), now).
			Find(&expired).Error; err != nil {
			return err
		}

		if len(expired) == 0 {
			return nil
		}

		bookingIDs := make([]string, 0, len(expired))
		slotIDs := make([]string, 0, len(expired))
		for _, b := range expired {
			bookingIDs = append(bookingIDs, b.ID)
			slotIDs = append(slotIDs, b.SlotID)
		}

		if err := tx.Model(&models.Slot{}).
			Where("id IN ?", slotIDs).
			Update("is_booked", false).Error; err != nil {
			return err
		}

		if err := tx.
			Where("id IN ?", bookingIDs).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		removed = int64(len(expired))
		return nil
	})

	return removed, err
}

// --------------------------------------------------
// Queries (read-only, lock-free)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.Filter,
) ([]models.Booking, int64, error) {

	base := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.Status != "" {
		base = base.Where("bookings.status = ?", f.Status)
	}
	if f.StudentID != "" {
		base = base.Where("bookings.student_id = ?", f.StudentID)
	}
	if f.SlotID != "" {
		base = base.Where("bookings.slot_id = ?", f.SlotID)
	}
	if f.TutorID != "" {
		base = base.
			Joins("JOIN slots ON slots.id = bookings.slot_id").
			Where("slots.tutor_id = ?", f.TutorID)
	}
	if f.Date != "" {
		day, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return nil, 0, httperr.ErrBusiness("invalid_date")
		}
		base = base.Where(
			"bookings.created_at >= ? AND bookings.created_at < ?",
			day, day.AddDate(0, 0, 1),
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[f.Page.SortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " DESC"
	if f.Page.OrderBy == "asc" {
		order = column + " ASC"
	}

	var bookings []models.Booking
	if err := base.
		Preload("Student").
		Preload("Slot").
		Preload("Slot.TutorProfile").
		Order("bookings." + order).
		Limit(f.Page.Limit).
		Offset(f.Page.Offset()).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *BookingGormRepository) UpcomingForTutor(
	ctx context.Context,
	tutorID string,
	now time.Time,
) ([]models.Booking, error) {

	return r.bookingsBySlot(ctx,
		"slots.tutor_id = ? AND bookings.status = ? AND slots.end_time > ?",
		tutorID, string(domain.StatusConfirmed), now,
	)
}

func (r *BookingGormRepository) UpcomingForStudent(
	ctx context.Context,
	studentID string,
	now time.Time,
) ([]models.Booking, error) {

	return r.bookingsBySlot(ctx,
		"bookings.student_id = ? AND bookings.status = ? AND slots.end_time > ?",
		studentID, string(domain.StatusConfirmed), now,
	)
}

func (r *BookingGormRepository) CompletedForTutor(
	ctx context.Context,
	tutorID string,
) ([]models.Booking, error) {

	return r.bookingsBySlot(ctx,
		"slots.tutor_id = ? AND bookings.status = ?",
		tutorID, string(domain.StatusCompleted),
	)
}

func (r *BookingGormRepository) CompletedForStudent(
	ctx context.Context,
	studentID string,
) ([]models.Booking, error) {

	return r.bookingsBySlot(ctx,
		"bookings.student_id = ? AND bookings.status = ?",
		studentID, string(domain.StatusCompleted),
	)
}

func (r *BookingGormRepository) bookingsBySlot(
	ctx context.Context,
	cond string,
	args ...any,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where(cond, args...).
		Preload("Student").
		Preload("Slot").
		Preload("Slot.TutorProfile").
		Order("slots.start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CountBookings(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&total).Error
	return total, err
}

func (r *BookingGormRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	var counts []domain.StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

// Compile-time checks
var (
	_ domain.Repository = (*BookingGormRepository)(nil)
	_ domain.Queries    = (*BookingGormRepository)(nil)
)
