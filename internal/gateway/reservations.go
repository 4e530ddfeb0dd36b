package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/toolair/pkg/models"
)

// GetUserReservations lists the current user's reservations as borrower.
func (c *Client) GetUserReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservation/mine", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservationsForTool lists reservations made against a tool the current
// user owns.
func (c *Client) GetReservationsForTool(ctx context.Context, toolID int64) ([]models.Reservation, error) {
	var reservations []models.Reservation
	path := fmt.Sprintf("/reservation?toolId=%d", toolID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation reserves a tool for an inclusive date range.
func (c *Client) CreateReservation(ctx context.Context, payload models.CreateReservationPayload) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservation", payload, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// SubmitReservationReview writes one rating slot onto a reservation. Score
// and comment travel atomically in a single call; the response is the
// updated reservation.
func (c *Client) SubmitReservationReview(ctx context.Context, reservationID int64, review models.ReviewSubmission) (*models.Reservation, error) {
	var reservation models.Reservation
	path := fmt.Sprintf("/reservation/%d/review", reservationID)
	if err := c.do(ctx, http.MethodPost, path, review, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}
