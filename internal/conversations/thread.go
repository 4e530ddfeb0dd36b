package conversations

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/toolair/pkg/models"
)

// ThreadGateway is the slice of the REST gateway the message thread needs.
type ThreadGateway interface {
	GetMessages(ctx context.Context, conversationID int64) ([]models.Message, error)
	SendMessage(ctx context.Context, conversationID int64, text string) error
}

// ThreadState is the lifecycle of the thread view for one selection.
type ThreadState int

const (
	// ThreadEmpty means no conversation is selected or nothing is loaded.
	ThreadEmpty ThreadState = iota
	// ThreadLoading means the message fetch for the selection is in flight.
	ThreadLoading
	// ThreadLoaded means the held messages belong to the selection.
	ThreadLoaded
	// ThreadSending means a send round-trip is in flight.
	ThreadSending
)

// ThreadModel holds the messages of the selected conversation and owns the
// compose buffer. Results of fetches started under a previous selection are
// discarded when they arrive: each selection bumps an epoch and a fetch only
// applies if its epoch is still current.
type ThreadModel struct {
	mu             sync.Mutex
	gw             ThreadGateway
	state          ThreadState
	conversationID int64
	epoch          uint64
	messages       []models.Message
	compose        string
}

// NewThreadModel returns an empty thread backed by gw.
func NewThreadModel(gw ThreadGateway) *ThreadModel {
	return &ThreadModel{gw: gw}
}

// Select switches the thread to a conversation. Held messages and the
// compose buffer are dropped immediately so nothing from the previous
// conversation can render under the new one.
func (m *ThreadModel) Select(conversationID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch++
	m.conversationID = conversationID
	m.messages = nil
	m.compose = ""
	m.state = ThreadEmpty
}

// Deselect clears the selection and resets the thread.
func (m *ThreadModel) Deselect() {
	m.Select(0)
}

// State returns the current thread state.
func (m *ThreadModel) State() ThreadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Messages returns the held messages in server order.
func (m *ThreadModel) Messages() []models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// SetCompose replaces the compose buffer.
func (m *ThreadModel) SetCompose(text string) {
	m.mu.Lock()
	m.compose = text
	m.mu.Unlock()
}

// Compose returns the compose buffer.
func (m *ThreadModel) Compose() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compose
}

// Load fetches the messages for the current selection and replaces the held
// list entirely. A result arriving after the selection changed is discarded.
// Read failures are logged and leave the thread empty.
func (m *ThreadModel) Load(ctx context.Context) {
	m.mu.Lock()
	conversationID := m.conversationID
	epoch := m.epoch
	if conversationID == 0 {
		m.mu.Unlock()
		return
	}
	m.state = ThreadLoading
	m.mu.Unlock()

	messages, err := m.gw.GetMessages(ctx, conversationID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.epoch != epoch {
		// Stale selection, drop the result.
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("conversation_id", conversationID).Msg("failed to load messages")
		m.messages = nil
		m.state = ThreadEmpty
		return
	}
	m.messages = messages
	m.state = ThreadLoaded
}

// Send posts the compose buffer to the selected conversation. An empty
// buffer after trimming is a no-op, checked before any network call. On
// success the buffer is cleared and the thread is re-fetched; the
// authoritative re-fetch is the source of truth, there is no optimistic
// append. On failure the buffer is kept so the typed text is not lost and
// the error is returned for display.
func (m *ThreadModel) Send(ctx context.Context) error {
	m.mu.Lock()
	conversationID := m.conversationID
	epoch := m.epoch
	text := strings.TrimSpace(m.compose)
	if conversationID == 0 || text == "" {
		m.mu.Unlock()
		return nil
	}
	prevState := m.state
	m.state = ThreadSending
	m.mu.Unlock()

	if err := m.gw.SendMessage(ctx, conversationID, text); err != nil {
		m.mu.Lock()
		if m.epoch == epoch {
			m.state = prevState
		}
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return nil
	}
	m.compose = ""
	m.mu.Unlock()

	m.Load(ctx)
	return nil
}
