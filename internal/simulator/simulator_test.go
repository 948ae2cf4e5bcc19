package simulator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auctionscan/pkg/config"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/poll"
	"auctionscan/pkg/scanner"
	"auctionscan/pkg/store"
)

func testSimulatorConfig(listings, warmupPolls int) *config.SimulatorConfig {
	return &config.SimulatorConfig{
		Listings:         listings,
		Seed:             42,
		WarmupPolls:      warmupPolls,
		Limiter:          "token_bucket",
		QueriesPerMinute: 60000,
		Burst:            100,
	}
}

func newTestVenue(t *testing.T, listings, warmupPolls int) *Venue {
	t.Helper()

	venue, err := New(testSimulatorConfig(listings, warmupPolls), 50, logger.NewNopLogger())
	require.NoError(t, err)
	return venue
}

func TestGenerateItemsDeterministic(t *testing.T) {
	first := generateItems(100, 42)
	second := generateItems(100, 42)
	assert.Equal(t, first, second, "the same seed must generate the same listings")

	other := generateItems(100, 43)
	assert.NotEqual(t, first, other, "a different seed must generate different listings")
}

func TestGenerateItemsComplete(t *testing.T) {
	items := generateItems(200, 7)
	require.Len(t, items, 200)

	for i, item := range items {
		assert.NotEmpty(t, item.Name, "item %d has no name", i)
		assert.NotEmpty(t, item.Owner, "item %d has no owner", i)
		assert.NotEmpty(t, item.Texture, "item %d has no texture", i)
		assert.Greater(t, item.MinBid, 0, "item %d has no minimum bid", i)
		assert.GreaterOrEqual(t, item.Buyout, 0, "item %d has a negative buyout", i)
	}
}

func TestGenerateItemsEmpty(t *testing.T) {
	assert.Nil(t, generateItems(0, 42))
	assert.Nil(t, generateItems(-5, 42))
}

func TestVenueRejectsBadConfig(t *testing.T) {
	_, err := New(&config.SimulatorConfig{Limiter: "leaky_bucket", QueriesPerMinute: 60, Burst: 5}, 50, logger.NewNopLogger())
	assert.Error(t, err)

	_, err = New(testSimulatorConfig(10, 0), 0, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestVenueServesPages(t *testing.T) {
	venue := newTestVenue(t, 75, 0)

	// Nothing buffered before the first query.
	shown, total := venue.BatchCounts()
	assert.Equal(t, 0, shown)
	assert.Equal(t, 0, total)

	venue.SendQuery(0)
	shown, total = venue.BatchCounts()
	assert.Equal(t, 50, shown)
	assert.Equal(t, 75, total)
	assert.NotEmpty(t, venue.BatchEntry(0).Owner, "no warm-up means owners are present immediately")

	venue.SendQuery(1)
	shown, total = venue.BatchCounts()
	assert.Equal(t, 25, shown)
	assert.Equal(t, 75, total)

	// A page past the population serves an empty buffer.
	venue.SendQuery(2)
	shown, _ = venue.BatchCounts()
	assert.Equal(t, 0, shown)

	assert.Equal(t, 3, venue.QueriesServed())
	assert.Equal(t, 75, venue.ListingCount())
}

func TestVenueWarmup(t *testing.T) {
	venue := newTestVenue(t, 10, 2)
	venue.SendQuery(0)

	// The first two consults see entries without owners.
	for consult := 1; consult <= 2; consult++ {
		shown, _ := venue.BatchCounts()
		require.Equal(t, 10, shown)
		assert.Empty(t, venue.BatchEntry(0).Owner, "consult %d should still be warming up", consult)
	}

	// The third consult sees the owners.
	_, _ = venue.BatchCounts()
	assert.NotEmpty(t, venue.BatchEntry(0).Owner)

	// A new query resets the warm-up.
	venue.SendQuery(0)
	_, _ = venue.BatchCounts()
	assert.Empty(t, venue.BatchEntry(0).Owner)
}

func TestVenueRateLimitsQueries(t *testing.T) {
	cfg := testSimulatorConfig(75, 0)
	cfg.QueriesPerMinute = 60
	cfg.Burst = 1

	venue, err := New(cfg, 50, logger.NewNopLogger())
	require.NoError(t, err)

	assert.True(t, venue.CanSendQuery())
	assert.True(t, venue.CanSendQuery(), "peeking must not consume the slot")

	venue.SendQuery(0)
	assert.Equal(t, 1, venue.QueriesServed())
	assert.False(t, venue.CanSendQuery(), "the slot is consumed by the served query")

	// An over-rate query is dropped without touching the buffer.
	venue.SendQuery(1)
	assert.Equal(t, 1, venue.QueriesServed())
	shown, total := venue.BatchCounts()
	assert.Equal(t, 50, shown)
	assert.Equal(t, 75, total)
}

func TestVenueClosed(t *testing.T) {
	venue := newTestVenue(t, 20, 0)

	venue.Close()
	assert.False(t, venue.IsOpen())
	assert.False(t, venue.CanSendQuery())

	venue.SendQuery(0)
	assert.Equal(t, 0, venue.QueriesServed(), "a closed venue serves no queries")

	venue.Open()
	assert.True(t, venue.IsOpen())
	assert.True(t, venue.CanSendQuery())
}

func TestScanEndToEnd(t *testing.T) {
	venue := newTestVenue(t, 75, 1)

	ctrl, err := scanner.New(venue, store.NewMemKV(), scanner.Options{
		ItemsPerPage: 50,
		Logger:       logger.NewNopLogger(),
	})
	require.NoError(t, err)
	require.NoError(t, ctrl.Start())

	err = poll.Do(func() bool {
		ctrl.ReadinessCheck()
		return !ctrl.IsScanning()
	}, &poll.Config{
		Interval: time.Millisecond,
		MaxPolls: 200,
		Context:  context.Background(),
		Logger:   logger.NewNopLogger(),
	})
	require.NoError(t, err)

	entry, ok := ctrl.History().Latest()
	require.True(t, ok)
	assert.Equal(t, 75, entry.ItemCount, "every simulated listing is scanned")
	assert.Len(t, entry.Listings, 75)
	assert.Equal(t, 2, venue.QueriesServed(), "75 listings at 50 per page is two queries")
	assert.Equal(t, scanner.StateCompleted, ctrl.Snapshot().State)
}

func TestScanWarmupDeniesWithoutIngest(t *testing.T) {
	venue := newTestVenue(t, 30, 3)

	ctrl, err := scanner.New(venue, store.NewMemKV(), scanner.Options{
		ItemsPerPage: 50,
		Logger:       logger.NewNopLogger(),
	})
	require.NoError(t, err)
	require.NoError(t, ctrl.Start())

	// Three warm-up consults deny without ingesting anything.
	for consult := 1; consult <= 3; consult++ {
		assert.False(t, ctrl.ReadinessCheck())
		assert.Equal(t, 0, ctrl.Snapshot().ItemsScanned, "consult %d ingested during warm-up", consult)
	}

	// The fourth sees the full page and completes the single-page scan.
	ctrl.ReadinessCheck()
	assert.False(t, ctrl.IsScanning())

	entry, ok := ctrl.History().Latest()
	require.True(t, ok)
	assert.Equal(t, 30, entry.ItemCount)
}

func TestEmptyVenueNeverCompletes(t *testing.T) {
	venue := newTestVenue(t, 0, 0)

	ctrl, err := scanner.New(venue, store.NewMemKV(), scanner.Options{
		ItemsPerPage: 50,
		Logger:       logger.NewNopLogger(),
	})
	require.NoError(t, err)
	require.NoError(t, ctrl.Start())

	// The gate denies forever on an empty venue; giving up is the
	// driver's call.
	err = poll.Do(func() bool {
		ctrl.ReadinessCheck()
		return !ctrl.IsScanning()
	}, &poll.Config{
		Interval: time.Millisecond,
		MaxPolls: 10,
		Context:  context.Background(),
		Logger:   logger.NewNopLogger(),
	})
	require.True(t, errors.Is(err, poll.ErrExhausted))

	require.NoError(t, ctrl.Cancel())
	assert.False(t, ctrl.IsScanning())
	assert.Equal(t, 0, ctrl.History().Len())
}
