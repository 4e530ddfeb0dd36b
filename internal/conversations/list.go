// Package conversations holds the client-side state for the messaging
// views: the conversation list for the current user and the message thread
// of the selected conversation.
package conversations

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/toolair/pkg/models"
)

// ListGateway is the slice of the REST gateway the conversation list needs.
type ListGateway interface {
	FetchConversations(ctx context.Context) ([]models.Conversation, error)
	FetchConversationsForTool(ctx context.Context, toolID int64) ([]models.Conversation, error)
	CreateConversation(ctx context.Context, toolID int64) (*models.Conversation, error)
}

// ListModel loads and holds the current user's conversations and tracks
// which one is selected. A fetch replaces the held list wholesale.
type ListModel struct {
	mu            sync.Mutex
	gw            ListGateway
	conversations []models.Conversation
	selectedID    int64
}

// NewListModel returns an empty conversation list backed by gw.
func NewListModel(gw ListGateway) *ListModel {
	return &ListModel{gw: gw}
}

// Load fetches all conversations for the current user, preserving server
// order. A failed fetch is logged and leaves an empty list; callers never
// see the error.
func (m *ListModel) Load(ctx context.Context) {
	conversations, err := m.gw.FetchConversations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load conversations")
		conversations = nil
	}
	m.mu.Lock()
	m.conversations = conversations
	m.mu.Unlock()
}

// Conversations returns the held list in server order.
func (m *ListModel) Conversations() []models.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Conversation, len(m.conversations))
	copy(out, m.conversations)
	return out
}

// LoadForTool fetches the conversations scoped to one tool. The caller
// treats a non-empty result as "conversation exists, use its id"; multiples
// are never reconciled. Read failures are logged and yield an empty slice.
func (m *ListModel) LoadForTool(ctx context.Context, toolID int64) []models.Conversation {
	conversations, err := m.gw.FetchConversationsForTool(ctx, toolID)
	if err != nil {
		log.Error().Err(err).Int64("tool_id", toolID).Msg("failed to load conversations for tool")
		return nil
	}
	return conversations
}

// Select marks a conversation as the active one. Selecting the id that is
// already selected deselects it. Pure state transition, no I/O.
func (m *ListModel) Select(conversationID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selectedID == conversationID {
		m.selectedID = 0
		return
	}
	m.selectedID = conversationID
}

// Deselect clears the active conversation.
func (m *ListModel) Deselect() {
	m.mu.Lock()
	m.selectedID = 0
	m.mu.Unlock()
}

// Selected returns the active conversation id and whether one is selected.
func (m *ListModel) Selected() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedID, m.selectedID != 0
}

// Create starts a conversation about a tool and returns it, id included.
// Navigation and selection afterwards are the caller's job. Failures
// propagate so the user sees them.
func (m *ListModel) Create(ctx context.Context, toolID int64) (*models.Conversation, error) {
	return m.gw.CreateConversation(ctx, toolID)
}

// EnsureForTool returns the existing conversation for a tool when one
// exists, creating one otherwise. The check-then-create window is a known
// race; de-duplication under concurrency is the server's contract.
func (m *ListModel) EnsureForTool(ctx context.Context, toolID int64) (*models.Conversation, bool, error) {
	existing := m.LoadForTool(ctx, toolID)
	if len(existing) > 0 {
		return &existing[0], false, nil
	}
	created, err := m.Create(ctx, toolID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
