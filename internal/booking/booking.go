// Package booking covers reserving a tool: the price quote for a date
// range and the handoff into payment checkout.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/toolair/pkg/models"
)

// Gateway is the slice of the REST gateway booking needs.
type Gateway interface {
	CreateReservation(ctx context.Context, payload models.CreateReservationPayload) (*models.Reservation, error)
	CreateCheckoutSession(ctx context.Context) (string, error)
}

// ErrEmptyRange means the requested period covers zero days.
var ErrEmptyRange = errors.New("reservation period covers no days")

// DaysInclusive counts the days in a from..to range, both endpoints
// included. Timestamps are normalized to midnight first, so partial days
// count whole. A reversed range counts zero.
func DaysInclusive(from, to time.Time) int {
	start := midnight(from)
	end := midnight(to)
	diff := int(end.Sub(start) / (24 * time.Hour))
	if diff < 0 {
		return 0
	}
	return diff + 1
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Quote is the cost breakdown shown before payment.
type Quote struct {
	Days        int
	RentalTotal float64
	Deposit     float64
	Payable     float64
}

// QuoteFor prices a tool for an inclusive date range: rental price per day
// times the day count, plus the deposit.
func QuoteFor(tool models.Tool, from, to time.Time) Quote {
	days := DaysInclusive(from, to)
	rental := tool.RentalPrice * float64(days)
	return Quote{
		Days:        days,
		RentalTotal: rental,
		Deposit:     tool.DepositPrice,
		Payable:     tool.DepositPrice + rental,
	}
}

// Model performs the reserve and checkout calls. Both are writes, so
// failures propagate to the caller.
type Model struct {
	gw Gateway
}

// NewModel returns a booking model backed by gw.
func NewModel(gw Gateway) *Model {
	return &Model{gw: gw}
}

// Reserve creates a reservation for the acting user. A zero-day range is
// rejected before any network call.
func (m *Model) Reserve(ctx context.Context, toolID int64, from, to time.Time, borrowerID int64) (*models.Reservation, error) {
	if DaysInclusive(from, to) == 0 {
		return nil, ErrEmptyRange
	}
	return m.gw.CreateReservation(ctx, models.CreateReservationPayload{
		ToolID:         toolID,
		DateFrom:       from,
		DateTo:         to,
		BorrowerUserID: borrowerID,
	})
}

// Checkout starts a payment session and returns the opaque redirect URL.
func (m *Model) Checkout(ctx context.Context) (string, error) {
	return m.gw.CreateCheckoutSession(ctx)
}
