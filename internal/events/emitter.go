package events

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
)

type subscription struct {
	handler EventHandler
	types   []string
}

func (s subscription) wants(eventType string) bool {
	return len(s.types) == 0 || slices.Contains(s.types, eventType)
}

// InMemoryEventEmitter delivers events synchronously to its subscribers in
// registration order.
type InMemoryEventEmitter struct {
	mu     sync.RWMutex
	subs   []subscription
	logger *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no subscribers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{logger: logger.With(slog.String("component", "model_events"))}
}

// RegisterHandler subscribes handler to the given event types, or to every
// event when no type is given.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler, types ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, subscription{handler: handler, types: types})
}

// EmitEvent implements EventEmitter. Every interested handler sees the event
// even when an earlier one fails; the failures are joined.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	e.mu.RLock()
	subs := slices.Clone(e.subs)
	e.mu.RUnlock()

	var errs []error
	for _, sub := range subs {
		if !sub.wants(event.Type) {
			continue
		}
		if err := sub.handler.HandleEvent(ctx, event); err != nil {
			e.logger.ErrorContext(ctx, "event handler failed",
				slog.String("event_type", event.Type),
				slog.String("event_id", event.ID.String()),
				slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewLoggingHandler returns a handler that logs every event at debug level.
func NewLoggingHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "model_events"))
	return HandlerFunc(func(ctx context.Context, event *Event) error {
		logger.DebugContext(ctx, "model changed",
			slog.String("event_type", event.Type),
			slog.String("payload", string(event.Payload)))
		return nil
	})
}
