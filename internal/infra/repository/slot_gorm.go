package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
	"github.com/EnamulBokshi/skillbridge-server/internal/pagination"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

type SlotFilter struct {
	TutorID    string
	SubjectID  string
	Date       string // YYYY-MM-DD
	IsFree     *bool
	IsFeatured *bool
	IsBooked   *bool

	Page pagination.Options
}

// SlotUpdate carries the tutor-editable fields; nil means "leave as is".
// The claimed flag is absent here; only the lifecycle touches it.
type SlotUpdate struct {
	Date       *time.Time
	StartTime  *time.Time
	EndTime    *time.Time
	SlotPrice  *float64
	IsFeatured *bool
	IsFree     *bool
}

func (r *SlotGormRepository) Create(ctx context.Context, slot *models.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *SlotGormRepository) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("TutorProfile").
		First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotGormRepository) List(
	ctx context.Context,
	f SlotFilter,
) ([]models.Slot, int64, error) {

	base := r.db.WithContext(ctx).Model(&models.Slot{})

	if f.TutorID != "" {
		base = base.Where("tutor_id = ?", f.TutorID)
	}
	if f.SubjectID != "" {
		base = base.Where("subject_id = ?", f.SubjectID)
	}
	if f.Date != "" {
		day, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return nil, 0, httperr.ErrBusiness("invalid_date")
		}
		base = base.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}
	if f.IsFree != nil {
		base = base.Where("is_free = ?", *f.IsFree)
	}
	if f.IsFeatured != nil {
		base = base.Where("is_featured = ?", *f.IsFeatured)
	}
	if f.IsBooked != nil {
		base = base.Where("is_booked = ?", *f.IsBooked)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "start_time ASC"
	if f.Page.OrderBy == "desc" {
		order = "start_time DESC"
	}

	var slots []models.Slot
	if err := base.
		Preload("Subject").
		Order(order).
		Limit(f.Page.Limit).
		Offset(f.Page.Offset()).
		Find(&slots).Error; err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

// Update edits a slot's window and flags. A claimed slot is frozen until its
// booking releases it.
func (r *SlotGormRepository) Update(
	ctx context.Context,
	id string,
	in SlotUpdate,
) (*models.Slot, error) {

	var slot models.Slot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeSlotNotFound)
			}
			return err
		}

		if slot.IsBooked {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed)
		}

		updates := map[string]any{}
		if in.Date != nil {
			updates["date"] = *in.Date
		}
		if in.StartTime != nil {
			updates["start_time"] = *in.StartTime
		}
		if in.EndTime != nil {
			updates["end_time"] = *in.EndTime
		}
		if in.SlotPrice != nil {
			updates["slot_price"] = *in.SlotPrice
		}
		if in.IsFeatured != nil {
			updates["is_featured"] = *in.IsFeatured
		}
		if in.IsFree != nil {
			updates["is_free"] = *in.IsFree
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&slot).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&slot, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

// Delete removes an unclaimed slot; deleting a claimed one is a conflict.
func (r *SlotGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeSlotNotFound)
			}
			return err
		}

		if slot.IsBooked {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyClaimed)
		}

		return tx.Delete(&slot).Error
	})
}
