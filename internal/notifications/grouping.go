// Package notifications folds raw notification events into the display
// groups the activity view renders, and performs the bulk acknowledge over
// a group's underlying ids.
package notifications

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/toolair/pkg/models"
)

// Gateway is the slice of the REST gateway the notification view needs.
type Gateway interface {
	FetchNotifications(ctx context.Context) ([]models.NotificationEvent, error)
	FetchNotificationsByAcknowledged(ctx context.Context, acknowledged bool) ([]models.NotificationEvent, error)
	AcknowledgeNotification(ctx context.Context, id int64) error
}

// Group is a maximal run of consecutive events, in descending-createdAt
// order, sharing message, reference and acknowledged state. It carries the
// first event's fields, with CreatedAt lifted to the newest member's
// timestamp. Client-derived, never persisted.
type Group struct {
	models.NotificationEvent
	Count  int
	AllIDs []int64
}

// GroupEvents folds an event sequence into groups. The fold is
// deterministic and order-dependent: grouping boundaries follow the input
// order, so the caller must sort before folding. Grouping a sequence of
// already-distinct runs again is a no-op.
func GroupEvents(events []models.NotificationEvent) []Group {
	var groups []Group
	for _, event := range events {
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			if last.Message == event.Message &&
				last.Reference == event.Reference &&
				last.Acknowledged == event.Acknowledged {
				last.Count++
				last.AllIDs = append(last.AllIDs, event.ID)
				if event.CreatedAt.After(last.CreatedAt) {
					last.CreatedAt = event.CreatedAt
				}
				continue
			}
		}
		groups = append(groups, Group{
			NotificationEvent: event,
			Count:             1,
			AllIDs:            []int64{event.ID},
		})
	}
	return groups
}

// SortDescending orders events newest first. The sort is stable: events
// with equal timestamps keep their fetch order.
func SortDescending(events []models.NotificationEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
}

// Model loads raw events and holds the derived groups.
type Model struct {
	mu     sync.Mutex
	gw     Gateway
	groups []Group
}

// NewModel returns an empty notification model backed by gw.
func NewModel(gw Gateway) *Model {
	return &Model{gw: gw}
}

// Load fetches raw events, sorts them newest first and folds them into
// groups. Read failures are logged and leave an empty list.
func (m *Model) Load(ctx context.Context) {
	events, err := m.gw.FetchNotifications(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load notifications")
		events = nil
	}
	m.set(events)
}

// LoadUnread fetches only the events still waiting for an acknowledge,
// sorted and folded the same way as Load.
func (m *Model) LoadUnread(ctx context.Context) {
	events, err := m.gw.FetchNotificationsByAcknowledged(ctx, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to load unread notifications")
		events = nil
	}
	m.set(events)
}

func (m *Model) set(events []models.NotificationEvent) {
	SortDescending(events)
	groups := GroupEvents(events)
	m.mu.Lock()
	m.groups = groups
	m.mu.Unlock()
}

// Groups returns the held groups, newest first.
func (m *Model) Groups() []Group {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Group, len(m.groups))
	copy(out, m.groups)
	return out
}

// AcknowledgeGroup acknowledges every id in the group, all calls in flight
// concurrently, and waits for all of them. An already-acknowledged group is
// a no-op so that navigating from a read notification issues no calls.
//
// There is no transaction across the fan-out: if one of N calls fails the
// others still commit, the first error is returned, and the model re-loads
// afterwards so the held groups reflect whatever actually persisted.
func (m *Model) AcknowledgeGroup(ctx context.Context, group Group) error {
	if group.Acknowledged {
		return nil
	}

	var eg errgroup.Group
	for _, id := range group.AllIDs {
		eg.Go(func() error {
			return m.gw.AcknowledgeNotification(ctx, id)
		})
	}
	err := eg.Wait()
	if err != nil {
		log.Error().Err(err).Str("reference", group.Reference).Msg("failed to acknowledge notification group")
	}

	m.Load(ctx)
	return err
}
