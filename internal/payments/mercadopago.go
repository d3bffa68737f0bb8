package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/EnamulBokshi/skillbridge-server/internal/models"
)

// Client creates Mercado Pago checkout preferences for confirmed bookings.
type Client struct {
	prefs preference.Client
}

func New(accessToken string) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &Client{prefs: preference.NewClient(cfg)}, nil
}

// CreateBookingPreference returns the checkout URL for a booking. The
// booking must carry its slot.
func (c *Client) CreateBookingPreference(ctx context.Context, b *models.Booking) (string, error) {
	req := preference.Request{
		ExternalReference: b.ID,
		Items: []preference.ItemRequest{
			{
				ID:        b.SlotID,
				Title:     "Tutoring session",
				Quantity:  1,
				UnitPrice: b.Slot.SlotPrice,
			},
		},
	}

	resp, err := c.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.InitPoint, nil
}
