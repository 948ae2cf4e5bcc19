package scanner

import (
	"time"

	"auctionscan/pkg/auction"
)

// session is the transient state of one scan. It exists only while
// Scanning; cancel and completion both reset it to the zero value.
type session struct {
	active        bool
	id            string
	startedAt     time.Time
	currentPage   int
	totalPages    int
	itemsScanned  int
	totalReported int
	records       []auction.Listing
}

func (s *session) reset() {
	*s = session{}
}
