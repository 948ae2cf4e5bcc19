package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auctionscan/pkg/store"
)

func entryWithCount(items int) Entry {
	return Entry{
		CompletedAt: time.Date(2024, 3, 10, 12, 0, items, 0, time.UTC),
		ItemCount:   items,
		Elapsed:     time.Duration(items) * time.Second,
	}
}

func TestNewEmpty(t *testing.T) {
	s, err := New(store.NewMemKV(), 5)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 5, s.Capacity())

	_, ok := s.Latest()
	assert.False(t, ok)
}

func TestDefaultCapacity(t *testing.T) {
	s, err := New(store.NewMemKV(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, s.Capacity())
}

func TestAppendAssignsID(t *testing.T) {
	s, err := New(store.NewMemKV(), 5)
	require.NoError(t, err)

	require.NoError(t, s.Append(entryWithCount(3)))

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.NotEmpty(t, latest.ID)
	assert.Equal(t, 3, latest.ItemCount)
}

func TestAppendEvictsOldest(t *testing.T) {
	s, err := New(store.NewMemKV(), 3)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append(entryWithCount(i)))
	}

	entries := s.Entries()
	require.Len(t, entries, 3)

	// The two oldest scans were evicted; the three most recent remain
	// in order.
	assert.Equal(t, 3, entries[0].ItemCount)
	assert.Equal(t, 4, entries[1].ItemCount)
	assert.Equal(t, 5, entries[2].ItemCount)
}

func TestPersistsAcrossReload(t *testing.T) {
	kv := store.NewMemKV()

	s, err := New(kv, 5)
	require.NoError(t, err)
	require.NoError(t, s.Append(entryWithCount(7)))
	require.NoError(t, s.Append(entryWithCount(9)))

	reloaded, err := New(kv, 5)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())

	latest, ok := reloaded.Latest()
	require.True(t, ok)
	assert.Equal(t, 9, latest.ItemCount)
}

func TestReloadTrimsToCapacity(t *testing.T) {
	kv := store.NewMemKV()

	s, err := New(kv, 10)
	require.NoError(t, err)
	for i := 1; i <= 6; i++ {
		require.NoError(t, s.Append(entryWithCount(i)))
	}

	// Reopening with a smaller capacity keeps only the most recent.
	smaller, err := New(kv, 2)
	require.NoError(t, err)

	entries := smaller.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 5, entries[0].ItemCount)
	assert.Equal(t, 6, entries[1].ItemCount)
}

func TestClear(t *testing.T) {
	kv := store.NewMemKV()

	s, err := New(kv, 5)
	require.NoError(t, err)
	require.NoError(t, s.Append(entryWithCount(1)))
	require.NoError(t, s.Clear())

	assert.Equal(t, 0, s.Len())

	var persisted []Entry
	found, err := kv.Get(Key, &persisted)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStats(t *testing.T) {
	s, err := New(store.NewMemKV(), 5)
	require.NoError(t, err)

	for _, n := range []int{10, 20, 30} {
		require.NoError(t, s.Append(entryWithCount(n)))
	}

	scans, items := s.Stats()
	assert.Equal(t, 3, scans)
	assert.Equal(t, 60, items)
}

func TestEntriesReturnsCopy(t *testing.T) {
	s, err := New(store.NewMemKV(), 5)
	require.NoError(t, err)
	require.NoError(t, s.Append(entryWithCount(1)))

	entries := s.Entries()
	entries[0].ItemCount = 999

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 1, latest.ItemCount, "mutating the snapshot must not touch the store")
}

func TestBoundedUnderManyAppends(t *testing.T) {
	s, err := New(store.NewMemKV(), DefaultCapacity)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, s.Append(Entry{ID: fmt.Sprintf("scan-%d", i), ItemCount: i}))
	}

	assert.Equal(t, DefaultCapacity, s.Len())

	entries := s.Entries()
	assert.Equal(t, "scan-40", entries[0].ID)
	assert.Equal(t, "scan-49", entries[len(entries)-1].ID)
}
