package domain

import "context"

// CacheInvalidator drops cached thread details after mutations. Sends are
// fire-and-forget; a dropped invalidation only extends staleness until the
// cache TTL expires.
type CacheInvalidator interface {
	Start(ctx context.Context)

	// Send schedules the thread's cached detail view for deletion.
	Send(threadID string)
}
