package scanner

import (
	"time"

	"auctionscan/pkg/auction"
)

// Venue is the host surface the controller scans. It is the auction
// house as the host exposes it: an openable window, a rate-limited
// query primitive, and a page buffer that fills in asynchronously
// after each query.
//
// Implementations must not call back into the Controller; the
// controller invokes Venue methods while holding its own state lock,
// except SendQuery and the saved readiness predicate, which are always
// invoked unlocked.
type Venue interface {
	// IsOpen reports whether the venue window is open and visible.
	IsOpen() bool

	// CanSendQuery is the venue's native readiness predicate: whether
	// a new listing query would be accepted right now.
	CanSendQuery() bool

	// SendQuery requests the given page of listings. Fire and forget;
	// results materialize in the batch buffer over subsequent polls.
	SendQuery(page int)

	// BatchCounts reports the state of the current page buffer: how
	// many entries are available to read and the total listing count
	// the venue reports across all pages. A total of zero means the
	// buffer has not populated yet.
	BatchCounts() (shown, total int)

	// BatchEntry reads one buffered entry by index, 0 <= i < shown.
	// Fields may still be absent while the page loads.
	BatchEntry(i int) auction.RawEntry
}

// Clock supplies the time for elapsed and ETA math. Tests substitute a
// fake; everything else uses the wall clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
