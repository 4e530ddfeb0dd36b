// Package reviews implements the reservation rating workflow: who may rate
// whom on a reservation, when a slot becomes writable, and the one-shot
// transition to read-only once a rating exists.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/toolair/pkg/models"
)

// Gateway is the slice of the REST gateway the review workflow needs.
type Gateway interface {
	GetUserReservations(ctx context.Context) ([]models.Reservation, error)
	GetReservationsForTool(ctx context.Context, toolID int64) ([]models.Reservation, error)
	SubmitReservationReview(ctx context.Context, reservationID int64, review models.ReviewSubmission) (*models.Reservation, error)
	GetUserReviewStatistics(ctx context.Context, userID int64) (*models.ReviewStatistics, error)
}

// SlotState is the rating state of one (reservation, rater role) pair.
type SlotState int

const (
	// NotEligible means the reservation has not finished yet.
	NotEligible SlotState = iota
	// EligibleUnrated means the reservation finished and the role's slot
	// is still empty.
	EligibleUnrated
	// RatedReadOnly means the role's slot holds a score and is permanently
	// read-only.
	RatedReadOnly
)

func (s SlotState) String() string {
	switch s {
	case NotEligible:
		return "not-eligible"
	case EligibleUnrated:
		return "eligible"
	case RatedReadOnly:
		return "read-only"
	default:
		return "unknown"
	}
}

// Validation and transition errors. ErrNotEligible and ErrAlreadyRated are
// raised before any network call; the server is expected to enforce the
// same rules independently.
var (
	ErrScoreOutOfRange    = errors.New("score must be an integer between 1 and 5")
	ErrNotEligible        = errors.New("reservation is not finished, rating not open yet")
	ErrAlreadyRated       = errors.New("this slot already holds a rating and is read-only")
	ErrUnknownReservation = errors.New("reservation is not in the held list")
	ErrUnknownRole        = errors.New("unknown rater role")
)

// SlotFor computes the rating state of a reservation for a rater role.
// Pure function over the reservation's status and the role's slot.
func SlotFor(r models.Reservation, role models.RaterRole) (SlotState, error) {
	var score *int
	switch role {
	case models.RaterOwner:
		score = r.OwnerScore
	case models.RaterBorrower:
		score = r.BorrowerScore
	default:
		return NotEligible, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if !r.Finished() {
		return NotEligible, nil
	}
	if score != nil {
		return RatedReadOnly, nil
	}
	return EligibleUnrated, nil
}

// Model loads and holds a reservation list (the user's own rentals, or the
// reservations against one owned tool) and performs the submit transition.
type Model struct {
	mu           sync.Mutex
	gw           Gateway
	reservations []models.Reservation
}

// NewModel returns an empty reservation review model backed by gw.
func NewModel(gw Gateway) *Model {
	return &Model{gw: gw}
}

// LoadMine fetches the current user's reservations as borrower, replacing
// the held list. Read failures are logged and leave an empty list.
func (m *Model) LoadMine(ctx context.Context) {
	reservations, err := m.gw.GetUserReservations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations")
		reservations = nil
	}
	m.replace(reservations)
}

// LoadForTool fetches the reservations made against one owned tool,
// replacing the held list. Read failures are logged and leave an empty list.
func (m *Model) LoadForTool(ctx context.Context, toolID int64) {
	reservations, err := m.gw.GetReservationsForTool(ctx, toolID)
	if err != nil {
		log.Error().Err(err).Int64("tool_id", toolID).Msg("failed to load reservations for tool")
		reservations = nil
	}
	m.replace(reservations)
}

func (m *Model) replace(reservations []models.Reservation) {
	m.mu.Lock()
	m.reservations = reservations
	m.mu.Unlock()
}

// Reservations returns the held list in server order.
func (m *Model) Reservations() []models.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out
}

// Get returns a held reservation by id.
func (m *Model) Get(reservationID int64) (models.Reservation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.ID == reservationID {
			return r, true
		}
	}
	return models.Reservation{}, false
}

// OpenFor computes the current slot state for a held reservation. A
// RatedReadOnly result means the view must not offer editing; Submit
// independently refuses the same transition.
func (m *Model) OpenFor(reservationID int64, role models.RaterRole) (SlotState, error) {
	r, ok := m.Get(reservationID)
	if !ok {
		return NotEligible, ErrUnknownReservation
	}
	return SlotFor(r, role)
}

// Submit writes one rating slot. Valid only from EligibleUnrated: scores
// outside 1..5, unfinished reservations and already-rated slots are all
// rejected here, before any network call. On success the updated
// reservation replaces the held entry with the same id and the slot becomes
// read-only. On failure the held state is unchanged.
func (m *Model) Submit(ctx context.Context, reservationID int64, role models.RaterRole, score int, comment string) error {
	if score < 1 || score > 5 {
		return ErrScoreOutOfRange
	}

	state, err := m.OpenFor(reservationID, role)
	if err != nil {
		return err
	}
	switch state {
	case NotEligible:
		return ErrNotEligible
	case RatedReadOnly:
		return ErrAlreadyRated
	}

	updated, err := m.gw.SubmitReservationReview(ctx, reservationID, models.ReviewSubmission{
		RaterRole: role,
		Score:     score,
		Comment:   comment,
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.reservations {
		if r.ID == updated.ID {
			m.reservations[i] = *updated
			break
		}
	}
	return nil
}

// Statistics returns a user's aggregate rating history. Read failures are
// logged and yield nil.
func (m *Model) Statistics(ctx context.Context, userID int64) *models.ReviewStatistics {
	stats, err := m.gw.GetUserReviewStatistics(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to load review statistics")
		return nil
	}
	return stats
}

// StatusOptions returns the distinct status lookups present in a
// reservation list, first occurrence order preserved. Views prepend their
// own "all" sentinel.
func StatusOptions(reservations []models.Reservation) []models.Lookup {
	seen := make(map[string]bool)
	var options []models.Lookup
	for _, r := range reservations {
		code := r.Status.Code
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		name := r.Status.Name
		if name == "" {
			name = code
		}
		options = append(options, models.Lookup{Code: code, Name: name})
	}
	return options
}
