package conversations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolair/pkg/models"
)

func msg(text string) models.Message {
	return models.Message{
		SentAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		SentBy: models.User{ID: 1, FirstName: "Anna"},
		Text:   text,
	}
}

type fakeThreadGateway struct {
	mu           sync.Mutex
	messages     map[int64][]models.Message
	getCalls     int
	sendCalls    int
	sendErr      error
	blockGet     map[int64]chan struct{}
	lastSentText string
	lastSentTo   int64
}

func newFakeThreadGateway() *fakeThreadGateway {
	return &fakeThreadGateway{
		messages: make(map[int64][]models.Message),
		blockGet: make(map[int64]chan struct{}),
	}
}

func (g *fakeThreadGateway) GetMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	g.mu.Lock()
	g.getCalls++
	gate := g.blockGet[conversationID]
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.messages[conversationID], nil
}

func (g *fakeThreadGateway) SendMessage(ctx context.Context, conversationID int64, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sendCalls++
	if g.sendErr != nil {
		return g.sendErr
	}
	g.lastSentTo = conversationID
	g.lastSentText = text
	g.messages[conversationID] = append(g.messages[conversationID], msg(text))
	return nil
}

func (g *fakeThreadGateway) getCallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.getCalls
}

func TestThreadLoad(t *testing.T) {
	gw := newFakeThreadGateway()
	gw.messages[1] = []models.Message{msg("hi"), msg("still there?")}

	thread := NewThreadModel(gw)
	assert.Equal(t, ThreadEmpty, thread.State())

	thread.Select(1)
	thread.Load(context.Background())

	assert.Equal(t, ThreadLoaded, thread.State())
	require.Len(t, thread.Messages(), 2)
	assert.Equal(t, "hi", thread.Messages()[0].Text, "server order preserved")
}

func TestThreadSelectionReset(t *testing.T) {
	gw := newFakeThreadGateway()
	gw.messages[1] = []models.Message{msg("old conversation")}

	thread := NewThreadModel(gw)
	thread.Select(1)
	thread.Load(context.Background())
	thread.SetCompose("draft")

	thread.Select(2)
	assert.Equal(t, ThreadEmpty, thread.State())
	assert.Empty(t, thread.Messages(), "stale messages never survive a selection switch")
	assert.Empty(t, thread.Compose())
}

func TestThreadSelectionRace(t *testing.T) {
	gw := newFakeThreadGateway()
	gw.messages[1] = []models.Message{msg("from A")}
	gw.messages[2] = []models.Message{msg("from B")}
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})
	gw.blockGet[1] = releaseA
	gw.blockGet[2] = releaseB

	thread := NewThreadModel(gw)

	var wg sync.WaitGroup
	thread.Select(1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		thread.Load(context.Background())
	}()

	thread.Select(2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		thread.Load(context.Background())
	}()

	// B resolves first, then the stale A fetch arrives late.
	close(releaseB)
	close(releaseA)
	wg.Wait()

	require.Len(t, thread.Messages(), 1)
	assert.Equal(t, "from B", thread.Messages()[0].Text, "late result for a superseded selection is discarded")
	assert.Equal(t, ThreadLoaded, thread.State())
}

func TestThreadSend(t *testing.T) {
	t.Run("SuccessClearsBufferAndRefetches", func(t *testing.T) {
		gw := newFakeThreadGateway()
		thread := NewThreadModel(gw)
		thread.Select(1)
		thread.Load(context.Background())
		callsBefore := gw.getCallCount()

		thread.SetCompose("hello")
		require.NoError(t, thread.Send(context.Background()))

		assert.Empty(t, thread.Compose(), "compose buffer reset after a 2xx send")
		assert.Equal(t, callsBefore+1, gw.getCallCount(), "thread re-fetched exactly once after send")
		assert.Equal(t, "hello", gw.lastSentText)
		assert.Equal(t, int64(1), gw.lastSentTo)
		require.Len(t, thread.Messages(), 1)
	})

	t.Run("FailureKeepsBufferAndSkipsRefetch", func(t *testing.T) {
		gw := newFakeThreadGateway()
		gw.sendErr = errors.New("503 service unavailable")
		thread := NewThreadModel(gw)
		thread.Select(1)
		thread.Load(context.Background())
		callsBefore := gw.getCallCount()

		thread.SetCompose("hello")
		err := thread.Send(context.Background())
		require.Error(t, err)

		assert.Equal(t, "hello", thread.Compose(), "typed text is preserved on failure")
		assert.Equal(t, callsBefore, gw.getCallCount(), "no re-fetch after a failed send")
		assert.Equal(t, ThreadLoaded, thread.State())
	})

	t.Run("EmptyAfterTrimIsNoop", func(t *testing.T) {
		gw := newFakeThreadGateway()
		thread := NewThreadModel(gw)
		thread.Select(1)

		thread.SetCompose("   \t ")
		require.NoError(t, thread.Send(context.Background()))
		assert.Zero(t, gw.sendCalls, "whitespace-only compose never reaches the network")
	})

	t.Run("NoSelectionIsNoop", func(t *testing.T) {
		gw := newFakeThreadGateway()
		thread := NewThreadModel(gw)
		thread.SetCompose("hello")
		require.NoError(t, thread.Send(context.Background()))
		assert.Zero(t, gw.sendCalls)
	})
}
