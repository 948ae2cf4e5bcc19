// Package ratelimit paces the queries sent to the auction house.
//
// Live venues drop listing queries that arrive faster than the realm
// accepts them, so the venue checks admission before every query. Two
// algorithms are available.
//
// Token Bucket:
//   - Fixed capacity bucket that refills after a specified period
//   - Allows a burst of queries followed by quiet periods
//   - Default used by the simulated venue
//
// Sliding Window:
//   - Tracks queries within a moving time window
//   - Smoother admission over time
//   - Better for steady scan traffic
//
// Interface:
//
// All limiters implement the Limiter interface:
//   - Allow() bool - Consume one slot if the rate allows it
//   - Ready() bool - Check whether Allow would succeed, without consuming
//   - Wait() - Block until a query is allowed
//   - Reset() - Reset the limiter state
//
// Ready exists because readiness is consulted far more often than
// queries are sent: a scan polls CanSendQuery between pages and must
// not burn admission slots while waiting.
//
// Usage:
//
//	// 60 queries per minute in bursts of 5
//	limiter, err := ratelimit.New("token_bucket", 60, 5)
//	if err != nil {
//	    return err
//	}
//
//	if limiter.Ready() {
//	    // A query would be admitted right now
//	}
//	if limiter.Allow() {
//	    // Slot consumed, send the query
//	}
//
//	// Sliding window: 60 queries over a strict minute
//	limiter, err = ratelimit.New("sliding_window", 60, 0)
package ratelimit
