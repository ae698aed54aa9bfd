package store

import (
	"testing"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id, name string) *cvibes.Candidate {
	return &cvibes.Candidate{ID: id, Name: name, Status: cvibes.StatusCompleted}
}

func TestAddAllIsAdditive(t *testing.T) {
	s := New()

	a := candidate("a", "Alice")
	b := candidate("b", "Bob")

	s.AddAll([]*cvibes.Candidate{a})
	s.AddAll([]*cvibes.Candidate{b})

	state := s.Snapshot()
	require.Len(t, state.Candidates, 2)
	assert.Same(t, a, state.Candidates[0])
	assert.Same(t, b, state.Candidates[1])
}

func TestAddAllKeepsDuplicates(t *testing.T) {
	s := New()

	a := candidate("a", "Alice")
	s.AddAll([]*cvibes.Candidate{a})
	s.AddAll([]*cvibes.Candidate{a})

	assert.Len(t, s.Snapshot().Candidates, 2, "the store never deduplicates")
}

func TestSetAllReplaces(t *testing.T) {
	s := New()

	s.AddAll([]*cvibes.Candidate{candidate("a", "Alice"), candidate("b", "Bob")})
	s.SetAll([]*cvibes.Candidate{candidate("c", "Carol")})

	state := s.Snapshot()
	require.Len(t, state.Candidates, 1)
	assert.Equal(t, "Carol", state.Candidates[0].Name)
}

func TestToggleDarkMode(t *testing.T) {
	s := New()

	assert.False(t, s.Snapshot().DarkMode)
	s.ToggleDarkMode()
	assert.True(t, s.Snapshot().DarkMode)
	s.ToggleDarkMode()
	assert.False(t, s.Snapshot().DarkMode)
}

func TestSelect(t *testing.T) {
	s := New()

	a := candidate("a", "Alice")
	s.AddAll([]*cvibes.Candidate{a})

	s.Select(a)
	assert.Same(t, a, s.Snapshot().Selected)

	s.Select(nil)
	assert.Nil(t, s.Snapshot().Selected)
}

func TestFindByID(t *testing.T) {
	s := New()

	a := candidate("a", "Alice")
	s.AddAll([]*cvibes.Candidate{a})

	assert.Same(t, a, s.FindByID("a"))
	assert.Nil(t, s.FindByID("missing"), "unknown ids resolve to the not-found condition, not a failure")
}

func TestSubscribeNotifiedAfterEveryMutation(t *testing.T) {
	s := New()

	var states []State
	s.Subscribe(func(state State) {
		states = append(states, state)
	})

	s.AddAll([]*cvibes.Candidate{candidate("a", "Alice")})
	s.ToggleDarkMode()
	s.Select(nil)

	require.Len(t, states, 3)
	assert.Len(t, states[0].Candidates, 1)
	assert.True(t, states[1].DarkMode)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := New()
	s.AddAll([]*cvibes.Candidate{candidate("a", "Alice")})

	state := s.Snapshot()
	state.Candidates[0] = candidate("x", "Mallory")

	assert.Equal(t, "Alice", s.Snapshot().Candidates[0].Name)
}
