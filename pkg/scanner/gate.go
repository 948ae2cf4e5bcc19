package scanner

import (
	"auctionscan/pkg/auction"
	"auctionscan/pkg/history"
)

// gateResult is what one gate pass decided, carried out of the lock so
// venue calls and event callbacks run unlocked.
type gateResult struct {
	sendPage int             // next page to request; -1 when none
	progress *Progress       // page advance to report
	entry    *history.Entry  // completed scan to report
	delegate func() bool     // saved predicate supplying the return value
}

// ReadinessCheck is the query gate. The host consults it in place of
// the venue's native readiness predicate.
//
// While idle it simply delegates to the native predicate. While
// scanning it inspects the page buffer: an unpopulated or still-loading
// batch denies the query; a complete batch is ingested, and the gate
// either advances to the next page (requesting it and denying this
// invocation) or, when the last page has been consumed, finalizes the
// scan and hands the decision back to the saved native predicate. That
// completion path is the only one whose return value comes from the
// native predicate; every other scanning path returns false so no
// overlapping query can fire.
func (c *Controller) ReadinessCheck() bool {
	c.mu.Lock()
	if !c.sess.active {
		c.mu.Unlock()
		return c.venue.CanSendQuery()
	}
	res := c.gateLocked()
	c.mu.Unlock()

	if res.sendPage >= 0 {
		c.venue.SendQuery(res.sendPage)
	}
	if res.progress != nil {
		c.events.fireProgress(*res.progress)
	}
	if res.entry != nil {
		c.events.fireCompleted(*res.entry)
	}
	if res.delegate != nil {
		return res.delegate()
	}
	return false
}

func (c *Controller) gateLocked() gateResult {
	res := gateResult{sendPage: -1}

	shown, total := c.venue.BatchCounts()
	if total == 0 {
		// Batch not yet populated; deny and wait for the next consult.
		return res
	}

	for i := 0; i < shown; i++ {
		if !c.venue.BatchEntry(i).HasOwner() {
			// Owners materialize last; the page is still loading.
			return res
		}
	}

	c.ingestLocked(shown, total)

	c.sess.totalPages = (total + c.itemsPerPage - 1) / c.itemsPerPage
	if c.sess.currentPage < c.sess.totalPages-1 {
		c.sess.currentPage++
		res.sendPage = c.sess.currentPage
		snap := c.snapshotLocked()
		res.progress = &snap
		return res
	}

	// Last page consumed.
	entry, saved := c.completeLocked()
	res.entry = &entry
	res.delegate = saved
	return res
}

// ingestLocked consumes the complete batch: every entry with a name
// and an owner becomes an immutable listing on the session. The
// reported total is taken as-is; it may drift between pages and the
// last observed value wins.
func (c *Controller) ingestLocked(shown, total int) {
	capturedAt := c.clock.Now()
	for i := 0; i < shown; i++ {
		e := c.venue.BatchEntry(i)
		if e.Name == "" || !e.HasOwner() {
			continue
		}
		c.sess.records = append(c.sess.records, auction.NewListing(e, capturedAt))
		c.sess.itemsScanned++
	}
	c.sess.totalReported = total

	c.log.DebugWithFields("page ingested", map[string]interface{}{
		"page":           c.sess.currentPage,
		"items_scanned":  c.sess.itemsScanned,
		"total_reported": c.sess.totalReported,
	})
}

// completeLocked finalizes the scan: the session becomes a history
// entry (with eviction handled by the store), the gate override comes
// off, and the session resets.
func (c *Controller) completeLocked() (history.Entry, func() bool) {
	now := c.clock.Now()
	entry := history.Entry{
		ID:          c.sess.id,
		CompletedAt: now,
		ItemCount:   c.sess.itemsScanned,
		Elapsed:     now.Sub(c.sess.startedAt),
		Listings:    c.sess.records,
	}

	if err := c.hist.Append(entry); err != nil {
		c.log.WithError(err).Warn("failed to persist scan history")
	}

	saved := c.finishLocked(StateCompleted)

	c.log.InfoWithFields("scan completed", map[string]interface{}{
		"scan_id": entry.ID,
		"items":   entry.ItemCount,
		"elapsed": entry.Elapsed,
	})
	return entry, saved
}
