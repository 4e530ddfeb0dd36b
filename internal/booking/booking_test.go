package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolair/pkg/models"
)

func day(d int) time.Time {
	return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"SameDay", day(5), day(5), 1},
		{"ThreeDays", day(5), day(7), 3},
		{"Reversed", day(7), day(5), 0},
		{"PartialHoursCountWhole", day(5).Add(23 * time.Hour), day(6).Add(1 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInclusive(tt.from, tt.to))
		})
	}
}

func TestQuoteFor(t *testing.T) {
	tool := models.Tool{RentalPrice: 4500, DepositPrice: 20000}

	quote := QuoteFor(tool, day(5), day(7))
	assert.Equal(t, 3, quote.Days)
	assert.Equal(t, 13500.0, quote.RentalTotal)
	assert.Equal(t, 20000.0, quote.Deposit)
	assert.Equal(t, 33500.0, quote.Payable)

	empty := QuoteFor(tool, day(7), day(5))
	assert.Zero(t, empty.Days)
	assert.Equal(t, 20000.0, empty.Payable, "deposit alone for an empty range")
}

type fakeBookingGateway struct {
	createCalls int
	lastPayload models.CreateReservationPayload
	checkoutURL string
}

func (g *fakeBookingGateway) CreateReservation(ctx context.Context, payload models.CreateReservationPayload) (*models.Reservation, error) {
	g.createCalls++
	g.lastPayload = payload
	return &models.Reservation{ID: 42, Status: models.Lookup{Code: "PENDING", Name: "Pending"}}, nil
}

func (g *fakeBookingGateway) CreateCheckoutSession(ctx context.Context) (string, error) {
	return g.checkoutURL, nil
}

func TestReserve(t *testing.T) {
	t.Run("EmptyRangeRejectedLocally", func(t *testing.T) {
		gw := &fakeBookingGateway{}
		_, err := NewModel(gw).Reserve(context.Background(), 10, day(7), day(5), 1)
		require.ErrorIs(t, err, ErrEmptyRange)
		assert.Zero(t, gw.createCalls)
	})

	t.Run("PayloadCarriesAllFields", func(t *testing.T) {
		gw := &fakeBookingGateway{}
		reservation, err := NewModel(gw).Reserve(context.Background(), 10, day(5), day(7), 77)
		require.NoError(t, err)
		assert.Equal(t, int64(42), reservation.ID)
		assert.Equal(t, int64(10), gw.lastPayload.ToolID)
		assert.Equal(t, int64(77), gw.lastPayload.BorrowerUserID)
	})
}

func TestCheckout(t *testing.T) {
	gw := &fakeBookingGateway{checkoutURL: "https://pay.example.com/session/abc"}
	url, err := NewModel(gw).Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", url)
}
