package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auctionscan/pkg/auction"
	"auctionscan/pkg/history"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/scanner"
	"auctionscan/pkg/store"
)

type fakeVenue struct {
	open    bool
	ready   bool
	shown   int
	total   int
	entries []auction.RawEntry
}

func (v *fakeVenue) IsOpen() bool                      { return v.open }
func (v *fakeVenue) CanSendQuery() bool                { return v.ready }
func (v *fakeVenue) SendQuery(page int)                {}
func (v *fakeVenue) BatchCounts() (int, int)           { return v.shown, v.total }
func (v *fakeVenue) BatchEntry(i int) auction.RawEntry { return v.entries[i] }

func newHandler(t *testing.T, venue *fakeVenue) *Handler {
	t.Helper()

	ctrl, err := scanner.New(venue, store.NewMemKV(), scanner.Options{
		Logger: logger.NewNopLogger(),
	})
	require.NoError(t, err)
	return NewHandler(ctrl)
}

func TestScanCommandStarts(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	assert.Equal(t, "Scan started.", h.Execute("scan"))
}

func TestScanCommandToggles(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	require.Equal(t, "Scan started.", h.Execute("scan"))
	assert.Equal(t, "Scan cancelled.", h.Execute("scan"))
	assert.Equal(t, "Scan started.", h.Execute("scan"))
}

func TestScanCommandReportsPreconditions(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: false, ready: true})

	reply := h.Execute("scan")
	assert.Contains(t, reply, "Cannot start")
	assert.Contains(t, reply, "not open")
}

func TestCancelCommand(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	assert.Equal(t, "No scan in progress.", h.Execute("cancel"))
	assert.Equal(t, "No scan in progress.", h.Execute("stop"))

	require.Equal(t, "Scan started.", h.Execute("scan"))
	assert.Equal(t, "Scan cancelled.", h.Execute("stop"))
}

func TestClearCommand(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})
	require.NoError(t, h.hist.Append(history.Entry{ItemCount: 10}))

	assert.Equal(t, "Scan history cleared.", h.Execute("clear"))
	assert.Equal(t, 0, h.hist.Len())
}

func TestStatsCommand(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	assert.Equal(t, "No scans recorded yet.", h.Execute("stats"))

	require.NoError(t, h.hist.Append(history.Entry{
		ItemCount:   1234,
		CompletedAt: time.Now().Add(-2 * time.Minute),
	}))

	reply := h.Execute("stats")
	assert.Contains(t, reply, "1 scan recorded")
	assert.Contains(t, reply, "1,234 items total")
	assert.Contains(t, reply, "minutes ago")

	require.NoError(t, h.hist.Append(history.Entry{
		ItemCount:   66,
		CompletedAt: time.Now(),
	}))
	assert.Contains(t, h.Execute("stats"), "2 scans recorded, 1,300 items total")
}

func TestUnknownCommandShowsHelp(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	for _, input := range []string{"", "   ", "wibble", "help", "scan-now"} {
		reply := h.Execute(input)
		assert.Contains(t, reply, "Auction scan commands:", "input %q", input)
		assert.Contains(t, reply, "stats")
	}
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	assert.Equal(t, "Scan started.", h.Execute("SCAN"))
	assert.Equal(t, "Scan cancelled.", h.Execute("Cancel"))
}

func TestVerbIgnoresTrailingWords(t *testing.T) {
	h := newHandler(t, &fakeVenue{open: true, ready: true})

	assert.Equal(t, "Scan started.", h.Execute("scan the auction house"))
}
