package idgen

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Generator produces the 10-digit display ids used on student and tutor
// profiles: MMDDYY followed by a 4-digit per-day sequence, e.g. T0129260001.
type Generator struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

func (g *Generator) NextStudentID(ctx context.Context) (string, error) {
	return g.next(ctx, &models.Student{}, "S")
}

func (g *Generator) NextTutorID(ctx context.Context) (string, error) {
	return g.next(ctx, &models.TutorProfile{}, "T")
}

func (g *Generator) next(ctx context.Context, model any, prefix string) (string, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	if err := g.db.WithContext(ctx).
		Model(model).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%02d%02d%02d%04d",
		prefix,
		int(now.Month()), now.Day(), now.Year()%100,
		count+1,
	), nil
}
