package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/toolair/pkg/models"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, payload models.RegisterPayload) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchProfile returns the authenticated user's profile.
func (c *Client) FetchProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserReviewStatistics returns a user's aggregate rating history.
func (c *Client) GetUserReviewStatistics(ctx context.Context, userID int64) (*models.ReviewStatistics, error) {
	var stats models.ReviewStatistics
	path := fmt.Sprintf("/users/%d/review-statistics", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateCheckoutSession starts a payment checkout and returns the opaque
// URL the user should be redirected to.
func (c *Client) CreateCheckoutSession(ctx context.Context) (string, error) {
	return c.doText(ctx, http.MethodPost, "/payments", map[string]interface{}{})
}
