package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/toolair/pkg/models"
)

// FetchConversations lists every conversation the current user takes part in.
func (c *Client) FetchConversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// FetchConversationsForTool lists conversations scoped to one tool. Zero
// results means no conversation exists yet for the (tool, current user) pair.
func (c *Client) FetchConversationsForTool(ctx context.Context, toolID int64) ([]models.Conversation, error) {
	var conversations []models.Conversation
	path := fmt.Sprintf("/conversations?toolId=%d", toolID)
	if err := c.do(ctx, http.MethodGet, path, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// CreateConversation starts a conversation about a tool. De-duplication of
// concurrent creates for the same (tool, renter) pair is the server's
// contract, not the client's.
func (c *Client) CreateConversation(ctx context.Context, toolID int64) (*models.Conversation, error) {
	payload := map[string]int64{"toolId": toolID}
	var conversation models.Conversation
	if err := c.do(ctx, http.MethodPost, "/conversations", payload, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetMessages lists a conversation's messages in server order, which is
// non-decreasing by sentAt.
func (c *Client) GetMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	var messages []models.Message
	path := fmt.Sprintf("/conversations/%d/messages", conversationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts one message to a conversation. The response body is
// optional and ignored; a 2xx status is the only success signal.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, text string) error {
	payload := map[string]interface{}{
		"conversationId": conversationID,
		"text":           text,
	}
	return c.do(ctx, http.MethodPost, "/messages", payload, nil)
}
