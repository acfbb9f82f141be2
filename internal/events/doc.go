// Package events carries model change notifications.
//
// The model publishes an Event for every flashcard mutation, QuickCache
// replacement, preference change and filter update. Subscribers such as the
// debug logger in cmd/quickcache register with an InMemoryEventEmitter,
// optionally for selected event types only.
package events
