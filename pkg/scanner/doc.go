// Package scanner provides the core auction house scan controller.
//
// The scanner package owns the scan lifecycle, coordinating between the
// venue's query primitives, the page buffer, progress reporting, and
// the persisted scan history.
//
// Architecture:
//
// The Controller struct is the main component that:
//   - Gates query submission behind a readiness check
//   - Detects when a result page has fully materialized
//   - Advances pagination until every page is consumed
//   - Aggregates listings across pages into one scan
//   - Computes live progress percentage and ETA
//   - Finalizes completed scans into a bounded history
//
// Usage:
//
//	kv, err := store.NewFileKV("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctrl, err := scanner.New(venue, kv, scanner.Options{
//	    ItemsPerPage: 50,
//	    Events: scanner.Events{
//	        Completed: func(e history.Entry) {
//	            fmt.Printf("scanned %d items\n", e.ItemCount)
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := ctrl.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	for !ctrl.ReadinessCheck() {
//	    // the host re-consults on its own cadence; pkg/poll does this
//	}
//
// Readiness:
//
// The host consults Controller.ReadinessCheck in place of the venue's
// native predicate. While a scan is active the check denies every query
// the scan did not issue itself; waiting is expressed as repeated
// denial, never as blocking. When the last page is ingested the
// controller finalizes the scan and hands the decision back to the
// venue's own predicate within the same invocation.
//
// Cancellation:
//
// Cancel is synchronous: the session resets and the native predicate is
// restored before the call returns. There is no in-flight query to
// abort; stale results are simply ignored once the session is reset.
package scanner
