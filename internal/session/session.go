// Package session holds the acting user for one client run. Every model
// that needs to know "who is acting" receives a *Session explicitly; there
// is no ambient global profile state.
package session

import (
	"context"
	"sync"

	"github.com/toolair/pkg/models"
)

// ProfileFetcher loads the authenticated user's profile from the backend.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context) (*models.User, error)
}

// Session is the explicit current-user context.
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

// New returns an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Refresh fetches the profile and stores it on the session. On failure the
// previously held user is kept unchanged and the error is returned.
func (s *Session) Refresh(ctx context.Context, fetcher ProfileFetcher) error {
	user, err := fetcher.FetchProfile(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// User returns the held user and whether one is present.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// UserID returns the acting user's id, or 0 when unauthenticated.
func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0
	}
	return s.user.ID
}

// Clear drops the held user.
func (s *Session) Clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}
