package engine

import "github.com/ninjapiraatti/furious-purpose/event"

// System is an interface that all systems must implement
type System interface {
	Update()
	Priority() int // Lower values run first
	Name() string
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase of a tick
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
