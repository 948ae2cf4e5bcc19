package scanner

import (
	"fmt"
	"time"
)

// State is the controller lifecycle state.
type State int

const (
	StateIdle State = iota
	StateScanning
	StateCompleted
	StateCancelled
)

// String returns the display name of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateScanning:
		return "Scanning"
	case StateCompleted:
		return "Completed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Progress is a point-in-time projection of the scan for display.
type Progress struct {
	State         State
	Percent       int
	CurrentPage   int
	TotalPages    int
	ItemsScanned  int
	TotalReported int
	Elapsed       time.Duration
	ETA           string
}

// Snapshot returns the current progress projection. Safe to call from
// any state; recomputed on every call.
func (c *Controller) Snapshot() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Progress {
	p := Progress{
		State:         c.state,
		CurrentPage:   c.sess.currentPage,
		TotalPages:    c.sess.totalPages,
		ItemsScanned:  c.sess.itemsScanned,
		TotalReported: c.sess.totalReported,
	}
	if c.sess.totalPages > 0 {
		p.Percent = c.sess.currentPage * 100 / c.sess.totalPages
	}
	if c.sess.active {
		p.Elapsed = c.clock.Now().Sub(c.sess.startedAt)
	}
	p.ETA = estimateRemaining(p.ItemsScanned, p.TotalReported, p.Elapsed)
	return p
}

// estimateRemaining projects how long the rest of the scan will take
// from the observed ingest rate. With nothing scanned yet there is no
// rate to project from; once the scanned count reaches the reported
// total the scan is effectively over even if the final page check has
// not fired yet.
func estimateRemaining(itemsScanned, totalReported int, elapsed time.Duration) string {
	if itemsScanned == 0 {
		return "unknown"
	}

	var itemsPerSecond float64
	if elapsed > 0 {
		itemsPerSecond = float64(itemsScanned) / elapsed.Seconds()
	}

	if itemsPerSecond > 0 && totalReported > itemsScanned {
		remaining := float64(totalReported-itemsScanned) / itemsPerSecond
		return formatETA(time.Duration(remaining * float64(time.Second)))
	}
	if totalReported <= itemsScanned {
		return "almost done"
	}
	return "unknown"
}

// formatETA renders a duration as "{h}h {m}m {s}s", omitting leading
// zero units.
func formatETA(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
