package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// Create inserts the review and recomputes the tutor's aggregate from the
// full review set in the same transaction. The recompute is authoritative:
// avg_rating can never drift from the stored reviews.
func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var tutor models.TutorProfile
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tutor, "id = ?", rv.TutorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeTutorNotFound)
			}
			return err
		}

		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&models.Review{}).
			Where("tutor_id = ?", rv.TutorID).
			Count(&total).Error; err != nil {
			return err
		}

		var sum float64
		if err := tx.Model(&models.Review{}).
			Where("tutor_id = ?", rv.TutorID).
			Select("COALESCE(SUM(rating), 0)").
			Scan(&sum).Error; err != nil {
			return err
		}

		return tx.Model(&models.TutorProfile{}).
			Where("id = ?", rv.TutorID).
			Updates(map[string]any{
				"avg_rating":    sum / float64(total),
				"total_reviews": total,
			}).Error
	})
}

func (r *ReviewGormRepository) ListByTutor(
	ctx context.Context,
	tutorID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Where("tutor_id = ?", tutorID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
