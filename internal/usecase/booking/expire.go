package booking

import (
	"context"
	"time"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
)

// ExpirePastBookings is periodic maintenance, not part of the request path.
type ExpirePastBookings struct {
	repo domain.Repository
}

func NewExpirePastBookings(repo domain.Repository) *ExpirePastBookings {
	return &ExpirePastBookings{repo: repo}
}

func (uc *ExpirePastBookings) Execute(ctx context.Context) (int64, error) {
	return uc.repo.DeleteExpiredPending(ctx, time.Now())
}
