package booking

import (
	"context"

	domain "github.com/EnamulBokshi/skillbridge-server/internal/domain/booking"
	"github.com/EnamulBokshi/skillbridge-server/internal/models"
	"github.com/EnamulBokshi/skillbridge-server/internal/pagination"
)

type BookingPage struct {
	Data       []models.Booking `json:"data"`
	Pagination pagination.Meta  `json:"pagination"`
}

type ListBookings struct {
	queries domain.Queries
}

func NewListBookings(queries domain.Queries) *ListBookings {
	return &ListBookings{queries: queries}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	f domain.Filter,
) (*BookingPage, error) {

	bookings, total, err := uc.queries.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}

	return &BookingPage{
		Data:       bookings,
		Pagination: pagination.NewMeta(f.Page, total),
	}, nil
}
