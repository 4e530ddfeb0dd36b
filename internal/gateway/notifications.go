package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/toolair/pkg/models"
)

// FetchNotifications lists every notification event for the current user.
func (c *Client) FetchNotifications(ctx context.Context) ([]models.NotificationEvent, error) {
	var events []models.NotificationEvent
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FetchNotificationsByAcknowledged lists notification events filtered by
// acknowledged state.
func (c *Client) FetchNotificationsByAcknowledged(ctx context.Context, acknowledged bool) ([]models.NotificationEvent, error) {
	var events []models.NotificationEvent
	path := fmt.Sprintf("/notifications?acknowledged=%t", acknowledged)
	if err := c.do(ctx, http.MethodGet, path, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AcknowledgeNotification marks a single event acknowledged.
func (c *Client) AcknowledgeNotification(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/notifications/acknowledge/%d", id)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}
