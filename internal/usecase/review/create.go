package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Repository persists a review and recomputes the tutor aggregate in one
// transaction.
type Repository interface {
	Create(ctx context.Context, rv *models.Review) error
	ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error)
}

type CreateReviewInput struct {
	TutorID   string
	StudentID string
	Rating    int
	Comment   string
}

type CreateReview struct {
	repo Repository
}

func NewCreateReview(repo Repository) *CreateReview {
	return &CreateReview{repo: repo}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRating)
	}

	rv := &models.Review{
		ID:        uuid.NewString(),
		TutorID:   in.TutorID,
		StudentID: in.StudentID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}

	if err := uc.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	return rv, nil
}
