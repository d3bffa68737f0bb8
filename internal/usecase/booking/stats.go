package booking

import (
	"context"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
)

type Stats struct {
	TotalBookings    int64                `json:"total_bookings"`
	BookingsByStatus []domain.StatusCount `json:"bookings_by_status"`
}

type BookingStats struct {
	queries domain.Queries
}

func NewBookingStats(queries domain.Queries) *BookingStats {
	return &BookingStats{queries: queries}
}

func (uc *BookingStats) Execute(ctx context.Context) (*Stats, error) {
	total, err := uc.queries.CountBookings(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := uc.queries.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalBookings:    total,
		BookingsByStatus: byStatus,
	}, nil
}
