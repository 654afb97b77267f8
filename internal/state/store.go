package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/logdeck/internal/remote"
)

// Snapshot describes the health of the log source feeding the UI.
type Snapshot struct {
	Source              string
	Status              remote.Status
	HasStatus           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive read or poll failures
	TotalLines          int
	Truncations         int
}

// IsOffline returns true when the source has failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetSource records a human readable name for the source.
func (s *Store) SetSource(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Source = name
}

// Update records one poll or read. When err is non-nil the previous status is
// kept but the error is recorded for visibility. status may be nil for
// sources that have none, such as local files.
func (s *Store) Update(status *remote.Status, lines int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	}
	s.snapshot.TotalLines += lines
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// RecordTruncation counts a rotation or truncation of the source.
func (s *Store) RecordTruncation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Truncations++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
