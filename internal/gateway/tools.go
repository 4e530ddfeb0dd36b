package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/toolair/pkg/models"
)

// GetToolByID fetches one tool listing.
func (c *Client) GetToolByID(ctx context.Context, id int64) (*models.Tool, error) {
	var tool models.Tool
	path := fmt.Sprintf("/tools/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

// GetToolsForUser lists the tools a user has listed for rent.
func (c *Client) GetToolsForUser(ctx context.Context, userID int64) ([]models.Tool, error) {
	var tools []models.Tool
	path := fmt.Sprintf("/users/%d/tools", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// UploadTool creates a new tool listing.
func (c *Client) UploadTool(ctx context.Context, payload models.UploadToolPayload) (*models.Tool, error) {
	var tool models.Tool
	if err := c.do(ctx, http.MethodPost, "/tools", payload, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}
