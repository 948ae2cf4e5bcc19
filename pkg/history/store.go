// Package history keeps the bounded record of completed scans.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"auctionscan/pkg/auction"
	"auctionscan/pkg/store"
)

// DefaultCapacity is how many completed scans are retained when the
// caller does not choose a capacity.
const DefaultCapacity = 10

// Key is the KV key the history is persisted under.
const Key = "scan_history"

// Entry is one completed scan.
type Entry struct {
	ID          string            `json:"id"`
	CompletedAt time.Time         `json:"completed_at"`
	ItemCount   int               `json:"item_count"`
	Elapsed     time.Duration     `json:"elapsed"`
	Listings    []auction.Listing `json:"listings,omitempty"`
}

// Store holds the most recent completed scans, oldest first. When a
// new entry would exceed the capacity, the oldest entry is evicted.
// Every change is written through to the backing KV.
type Store struct {
	mu       sync.Mutex
	kv       store.KV
	capacity int
	entries  []Entry
}

// New loads the persisted history from kv. A capacity of zero or less
// selects DefaultCapacity. If the persisted history is longer than the
// capacity, only the most recent entries are kept.
func New(kv store.KV, capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s := &Store{
		kv:       kv,
		capacity: capacity,
	}

	var persisted []Entry
	found, err := kv.Get(Key, &persisted)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan history: %w", err)
	}
	if found {
		if len(persisted) > capacity {
			persisted = persisted[len(persisted)-capacity:]
		}
		s.entries = persisted
	}
	return s, nil
}

// Append records a completed scan, evicting the oldest entry when the
// store is full. An entry without an ID gets one assigned.
func (s *Store) Append(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
	return s.kv.Put(Key, s.entries)
}

// Entries returns a copy of the retained scans, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Latest returns the most recent completed scan, if any.
func (s *Store) Latest() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len reports how many scans are retained.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Capacity reports the maximum number of retained scans.
func (s *Store) Capacity() int {
	return s.capacity
}

// Clear drops all retained scans and removes the persisted history.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.kv.Delete(Key)
}

// Stats sums the retained scans into a scan count and total item count.
func (s *Store) Stats() (scans int, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		items += e.ItemCount
	}
	return len(s.entries), items
}
