// Package simulator provides a deterministic in-process venue for
// driving the scan controller without a live host: a seeded listing
// population, paged batch serving, rate-limited query admission, and
// configurable warm-up so pages materialize over several consults the
// way a real venue's do.
package simulator

import (
	"fmt"
	"sync"

	"auctionscan/pkg/auction"
	"auctionscan/pkg/config"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/ratelimit"
)

// Venue is a simulated auction house implementing scanner.Venue.
type Venue struct {
	mu  sync.Mutex
	log logger.Logger

	limiter      ratelimit.Limiter
	items        []auction.RawEntry
	itemsPerPage int
	warmupPolls  int

	open        bool
	queried     bool
	currentPage int
	polls       int // buffer reads since the last query
	queries     int
}

// New builds a simulated venue from configuration. The listing
// population is generated deterministically from the seed; query
// admission goes through the configured rate limiter. The venue starts
// open.
func New(cfg *config.SimulatorConfig, itemsPerPage int, log logger.Logger) (*Venue, error) {
	if log == nil {
		log = logger.GetLogger()
	}
	if itemsPerPage <= 0 {
		return nil, fmt.Errorf("items per page must be positive, got %d", itemsPerPage)
	}

	limiter, err := ratelimit.New(cfg.Limiter, cfg.QueriesPerMinute, cfg.Burst)
	if err != nil {
		return nil, fmt.Errorf("failed to build query limiter: %w", err)
	}

	v := &Venue{
		log:          log,
		limiter:      limiter,
		items:        generateItems(cfg.Listings, cfg.Seed),
		itemsPerPage: itemsPerPage,
		warmupPolls:  cfg.WarmupPolls,
		open:         true,
	}

	log.InfoWithFields("simulated venue ready", map[string]interface{}{
		"listings":       len(v.items),
		"items_per_page": itemsPerPage,
		"warmup_polls":   cfg.WarmupPolls,
		"limiter":        cfg.Limiter,
	})
	return v, nil
}

// Open opens the venue window.
func (v *Venue) Open() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = true
}

// Close closes the venue window. The host is responsible for telling
// the controller (OnVenueClosed); the venue itself only stops serving.
func (v *Venue) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = false
}

func (v *Venue) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.open
}

// CanSendQuery peeks at the rate limiter without consuming a slot.
func (v *Venue) CanSendQuery() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.open && v.limiter.Ready()
}

// SendQuery serves a page request: the buffer resets and begins
// warming up for the requested page. Over-rate queries are dropped.
func (v *Venue) SendQuery(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.open {
		return
	}
	if !v.limiter.Allow() {
		v.log.WarnWithFields("query dropped by rate limiter", map[string]interface{}{
			"page": page,
		})
		return
	}

	v.queried = true
	v.currentPage = page
	v.polls = 0
	v.queries++

	v.log.DebugWithFields("query served", map[string]interface{}{
		"page": page,
	})
}

// BatchCounts reports the buffer state for the current page. Each call
// counts as one consult toward the page's warm-up.
func (v *Venue) BatchCounts() (shown, total int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.queried {
		return 0, 0
	}
	v.polls++

	return v.pageSizeLocked(), len(v.items)
}

// BatchEntry reads one buffered entry. Owners are withheld until the
// page has warmed up, which is how the real buffer behaves: entry
// bodies arrive first, owner fields materialize last.
func (v *Venue) BatchEntry(i int) auction.RawEntry {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry := v.items[v.currentPage*v.itemsPerPage+i]
	if v.polls <= v.warmupPolls {
		entry.Owner = ""
	}
	return entry
}

func (v *Venue) pageSizeLocked() int {
	start := v.currentPage * v.itemsPerPage
	if start >= len(v.items) {
		return 0
	}
	end := start + v.itemsPerPage
	if end > len(v.items) {
		end = len(v.items)
	}
	return end - start
}

// ListingCount reports how many listings the venue holds.
func (v *Venue) ListingCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.items)
}

// QueriesServed reports how many page queries were admitted.
func (v *Venue) QueriesServed() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.queries
}
