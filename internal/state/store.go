package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/faceoff/internal/nhl"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Standings           []nhl.Standing
	HasStandings        bool
	Scores              nhl.Scoreboard
	HasScores           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int    // Number of consecutive poll failures
	Version             uint64 // Incremented whenever data is stored
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update stores whatever data it is given and records the poll outcome. A nil
// standings or scores argument leaves that part of the snapshot untouched, so
// a poll that fails halfway can still publish the half that arrived. A non-nil
// err counts as a failure; Version moves only when data was stored.
func (s *Store) Update(standings []nhl.Standing, scores *nhl.Scoreboard, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if standings != nil {
		s.snapshot.Standings = slices.Clone(standings)
		s.snapshot.HasStandings = true
	}
	if scores != nil {
		s.snapshot.Scores = cloneScoreboard(*scores)
		s.snapshot.HasScores = true
	}
	if standings != nil || scores != nil {
		s.snapshot.Version++
	}
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Standings = slices.Clone(s.snapshot.Standings)
	snap.Scores = cloneScoreboard(s.snapshot.Scores)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Version returns the current version without copying the snapshot.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

func cloneScoreboard(b nhl.Scoreboard) nhl.Scoreboard {
	b.Games = slices.Clone(b.Games)
	for i := range b.Games {
		b.Games[i].Goals = slices.Clone(b.Games[i].Goals)
	}
	return b
}
