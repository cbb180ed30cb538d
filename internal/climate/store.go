package climate

import "sync/atomic"

// Store holds the current dataset snapshot. Snapshots are replaced whole and
// never mutated in place, so readers under concurrent reloads always see a
// consistent table pair.
type Store struct {
	current atomic.Pointer[Dataset]
}

// NewStore creates a Store publishing the given initial snapshot.
func NewStore(ds *Dataset) *Store {
	s := &Store{}
	s.current.Store(ds)
	return s
}

// Snapshot returns the current dataset.
func (s *Store) Snapshot() *Dataset {
	return s.current.Load()
}

// Replace publishes a new snapshot. In-flight readers keep the snapshot they
// already hold.
func (s *Store) Replace(ds *Dataset) {
	s.current.Store(ds)
}
