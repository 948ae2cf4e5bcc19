// Package poll drives readiness re-invocation for hosts embedding the
// scan controller.
//
// The controller itself never sleeps or retries: a denied query is
// retried only by the host consulting the readiness check again. This
// package is the host-side loop that does the consulting, on a fixed
// interval, with context cancellation and an optional poll budget.
//
// Basic usage:
//
//	err := poll.Do(func() bool {
//		ctrl.ReadinessCheck()
//		return !ctrl.IsScanning()
//	}, &poll.Config{
//		Interval: 250 * time.Millisecond,
//		Context:  ctx,
//	})
//	if errors.Is(err, poll.ErrExhausted) {
//		ctrl.Cancel()
//	}
package poll
