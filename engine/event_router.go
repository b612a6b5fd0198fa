package engine

import "github.com/ninjapiraatti/furious-purpose/event"

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.Queue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.Queue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them to handlers in FIFO order
// Events pushed by handlers are dispatched in the same call, up to maxRounds passes
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	const maxRounds = 8
	total := 0
	for round := 0; round < maxRounds; round++ {
		events := r.queue.Drain()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		total += len(events)
	}
	return total
}
