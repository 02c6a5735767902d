// Package session keeps booking wizards in memory between HTTP requests.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
	"github.com/flight-search/booking-wizard/internal/infrastructure/timeutil"
	"github.com/flight-search/booking-wizard/internal/wizard"
)

type entry struct {
	mu       sync.Mutex
	wizard   *wizard.Wizard
	lastSeen time.Time
	removed  bool
}

// Store is an in-memory wizard store with idle expiry.
// Access to one wizard is serialised through its entry lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	clock    timeutil.Clock
}

// NewStore creates a store whose sessions expire after ttl without access.
func NewStore(ttl time.Duration, clock timeutil.Clock) *Store {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		clock:    clock,
	}
}

// Create stores w and returns its new session id.
func (s *Store) Create(w *wizard.Wizard) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &entry{wizard: w, lastSeen: s.clock.Now()}
	s.mu.Unlock()

	return id
}

// With runs fn with exclusive access to the wizard of session id and
// refreshes its expiry. Unknown or expired sessions return
// domain.ErrSessionNotFound; a session with a running submission does not
// expire. fn must not block on I/O.
func (s *Store) With(id string, fn func(w *wizard.Wizard) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.clock.Now()
	if e.removed || (s.expired(e, now) && !e.wizard.Busy()) {
		return domain.ErrSessionNotFound
	}
	e.lastSeen = now

	return fn(e.wizard)
}

// Delete removes session id. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return false
	}
	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
	delete(s.sessions, id)
	return true
}

// Len returns the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
// Sessions with a running submission are kept.
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		e.mu.Lock()
		if s.expired(e, now) && !e.wizard.Busy() {
			e.removed = true
			delete(s.sessions, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := logger.Ctx(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Session janitor stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Info().Int("expired", n).Int("active", s.Len()).Msg("Expired wizard sessions removed")
			}
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
