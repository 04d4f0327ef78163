// Package workers runs background jobs of the terminal client.
//
// A [Worker] is started with a parent context and stopped explicitly; the
// [Workers] aggregate starts and stops a set of them together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations launch their own goroutine and return.
// Stop cancels the goroutine and waits for it to exit. Stop is a no-op when
// the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// HealthChecker probes server availability. It returns nil when the server
// is up.
type HealthChecker interface {
	Check(ctx context.Context) error
}
