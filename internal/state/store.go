package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/dex/internal/catalog"
)

// Phase describes where the one-shot catalog load stands.
type Phase int

const (
	Loading Phase = iota
	Ready
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Snapshot represents the latest load result available to the UI.
type Snapshot struct {
	Phase     Phase
	Records   []catalog.Record
	Err       error
	StartedAt time.Time
	LoadedAt  time.Time
}

// Count returns the number of loaded records.
func (s Snapshot) Count() int {
	return len(s.Records)
}

// Store coordinates the loader goroutine with UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin marks a fresh load attempt. Previously loaded records are dropped so
// a retry never shows a mix of old and new data.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{Phase: Loading, StartedAt: time.Now()}
}

// Resolve records the outcome of a load. On error the record list is
// discarded entirely.
func (s *Store) Resolve(records []catalog.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LoadedAt = time.Now()
	if err != nil {
		s.snapshot.Phase = Failed
		s.snapshot.Records = nil
		s.snapshot.Err = err
		return
	}

	s.snapshot.Phase = Ready
	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Err = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	return snap
}

// Records are immutable once fetched, so a shallow copy of the slice is enough.
func cloneRecords(records []catalog.Record) []catalog.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]catalog.Record, len(records))
	copy(dup, records)
	return dup
}
