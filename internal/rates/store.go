package rates

import (
	"sync/atomic"
	"time"
)

// Store holds the latest rate snapshot. Replace publishes a fully-built
// snapshot with a single pointer swap, so concurrent readers never observe a
// half-updated rate table.
type Store struct {
	ttl  time.Duration
	snap atomic.Pointer[Snapshot]
}

// NewStore creates an empty store whose snapshots stay fresh for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl}
}

// Current returns the latest snapshot, or nil before the first refresh.
func (s *Store) Current() *Snapshot {
	return s.snap.Load()
}

// Replace atomically swaps in a new snapshot.
func (s *Store) Replace(snap *Snapshot) {
	s.snap.Store(snap)
}

// IsFresh reports whether a snapshot exists and is younger than the store TTL.
func (s *Store) IsFresh() bool {
	snap := s.snap.Load()
	if snap == nil || snap.FetchedAt.IsZero() {
		return false
	}
	return time.Since(snap.FetchedAt) < s.ttl
}
