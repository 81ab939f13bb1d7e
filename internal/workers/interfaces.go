// Package workers bridges the event bus and the transport.
//
// Bus handlers run on the UI goroutine and must not block, so each worker
// queues the messages it subscribes to and serves them on its own goroutine.
// Replies travel back through [bus.Bus.Post].
package workers

// Worker is a background component with an explicit lifecycle.
//
// Run starts the worker and returns immediately. Stop releases its
// subscriptions and waits for the job in progress to finish.
type Worker interface {
	Run()
	Stop()
}
