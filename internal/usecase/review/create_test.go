package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/EnamulBokshi/skillbridge-server/internal/httperr"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, rv *models.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockRepository) ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error) {
	args := m.Called(ctx, tutorID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func TestCreateReview_Success(t *testing.T) {
	repo := &MockRepository{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

	uc := NewCreateReview(repo)

	rv, err := uc.Execute(context.Background(), CreateReviewInput{
		TutorID:   "tutor-1",
		StudentID: "student-1",
		Rating:    4,
		Comment:   "Patient and well prepared.",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, rv.ID)
	assert.Equal(t, "tutor-1", rv.TutorID)
	assert.Equal(t, 4, rv.Rating)
	repo.AssertExpectations(t)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	repo := &MockRepository{}
	uc := NewCreateReview(repo)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			TutorID:   "tutor-1",
			StudentID: "student-1",
			Rating:    rating,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRating), "rating %d", rating)
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_RepoFailurePropagates(t *testing.T) {
	repo := &MockRepository{}
	repo.On("Create", mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeTutorNotFound))

	uc := NewCreateReview(repo)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		TutorID:   "ghost",
		StudentID: "student-1",
		Rating:    5,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeTutorNotFound))
}
