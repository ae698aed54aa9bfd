// Package store holds the session-wide analysis state: the candidate
// collection, the current selection and the dark-mode flag. It is the only
// mutable cell in the application; every view reads from it.
package store

import (
	"sync"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
)

// State is an immutable snapshot of the session. The candidates slice is
// copied on every read and write, so a snapshot never observes a partial
// mutation.
type State struct {
	DarkMode   bool
	Candidates []*cvibes.Candidate
	Selected   *cvibes.Candidate
}

// Listener receives the new snapshot after every mutation.
type Listener func(State)

type Store struct {
	mu        sync.Mutex
	state     State
	listeners []Listener
}

func New() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Subscribe registers a listener. Listeners are invoked synchronously, in
// registration order, after each mutation.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, l)
}

// SetAll replaces the whole candidate collection.
func (s *Store) SetAll(candidates []*cvibes.Candidate) {
	s.mu.Lock()
	s.state.Candidates = append([]*cvibes.Candidate(nil), candidates...)
	snapshot, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()

	notify(listeners, snapshot)
}

// AddAll appends the batch after the existing entries, preserving incoming
// order. No deduplication happens here: callers own not double-submitting
// the same batch.
func (s *Store) AddAll(candidates []*cvibes.Candidate) {
	s.mu.Lock()
	s.state.Candidates = append(s.state.Candidates, candidates...)
	snapshot, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()

	notify(listeners, snapshot)
}

// Select points the session at a candidate already held by the collection.
// Nil clears the selection.
func (s *Store) Select(candidate *cvibes.Candidate) {
	s.mu.Lock()
	s.state.Selected = candidate
	snapshot, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()

	notify(listeners, snapshot)
}

func (s *Store) ToggleDarkMode() {
	s.mu.Lock()
	s.state.DarkMode = !s.state.DarkMode
	snapshot, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()

	notify(listeners, snapshot)
}

// FindByID resolves a detail lookup against the collection. A nil result is
// the not-found condition, not an error.
func (s *Store) FindByID(id string) *cvibes.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, candidate := range s.state.Candidates {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

func (s *Store) snapshotLocked() State {
	return State{
		DarkMode:   s.state.DarkMode,
		Candidates: append([]*cvibes.Candidate(nil), s.state.Candidates...),
		Selected:   s.state.Selected,
	}
}

func notify(listeners []Listener, snapshot State) {
	for _, l := range listeners {
		l(snapshot)
	}
}
