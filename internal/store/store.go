// Package store holds the current feed snapshot and the dashboard's
// session state (filter-independent): the event collection, its freshness,
// and the single selected-event slot.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

// ErrUnknownEvent is returned when a selection targets an event ID that is
// not in the current snapshot.
var ErrUnknownEvent = errors.New("unknown event id")

// Status describes the current snapshot's freshness for API responses.
type Status struct {
	EventCount  int
	LastUpdated time.Time
	Stale       bool
	LastError   string
}

// Store is the single owner of snapshot state. The collection is replaced
// wholesale on every successful fetch; a failed fetch preserves the prior
// batch and marks it stale.
type Store struct {
	mu          sync.RWMutex
	events      []domain.Event
	byID        map[string]int
	lastUpdated time.Time
	stale       bool
	lastError   string
	selectedID  string
}

// New creates an empty Store.
func New() *Store {
	return &Store{byID: map[string]int{}}
}

// ReplaceAll swaps in a new snapshot. It clears the stale flag and the last
// error, and drops the selection if the selected event is absent from the
// new batch.
func (s *Store) ReplaceAll(events []domain.Event, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make([]domain.Event, len(events))
	copy(s.events, events)

	s.byID = make(map[string]int, len(events))
	for i := range s.events {
		s.byID[s.events[i].ID] = i
	}

	s.lastUpdated = fetchedAt
	s.stale = false
	s.lastError = ""

	if s.selectedID != "" {
		if _, ok := s.byID[s.selectedID]; !ok {
			s.selectedID = ""
		}
	}
}

// RecordFailure marks the snapshot stale after a failed fetch. The previous
// batch is preserved so the dashboard can keep showing it with a stale
// indicator.
func (s *Store) RecordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stale = true
	s.lastError = err.Error()
}

// Events returns a copy of the current snapshot in feed order.
func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get looks up one event by ID.
func (s *Store) Get(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Event{}, false
	}
	return s.events[i], true
}

// Select sets the selected-event slot. Returns ErrUnknownEvent when the ID
// is not in the current snapshot.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrUnknownEvent
	}
	s.selectedID = id
	return nil
}

// Selected returns the currently selected event, if any.
func (s *Store) Selected() (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return domain.Event{}, false
	}
	i, ok := s.byID[s.selectedID]
	if !ok {
		return domain.Event{}, false
	}
	return s.events[i], true
}

// ClearSelection empties the selected-event slot.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = ""
}

// Status reports the snapshot's size and freshness.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		EventCount:  len(s.events),
		LastUpdated: s.lastUpdated,
		Stale:       s.stale,
		LastError:   s.lastError,
	}
}
