package engine

import (
	"sort"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/event"
)

// World contains all entities and their components using typed stores
type World struct {
	nextEntityID core.Entity

	// Singleton resources shared by systems
	Resources *Resource

	// Position Store (Special - spatial index, kept as named field)
	Positions  *PositionStore
	Components ComponentStore

	systems []System
}

// NewWorld creates a new ECS world with empty stores and resources
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources:    &Resource{},
		Positions:    NewPositionStore(),
		Components:   newComponentStore(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
// IDs grow monotonically so a lower ID always means an older entity
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyBatch removes several entities from every store in one pass per store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	w.Positions.RemoveBatch(entities)
	for _, s := range w.Components.all() {
		s.RemoveBatch(entities)
	}
}

// Clear removes all entities and components from the world
// Entity IDs keep counting so stale references never alias new entities
func (w *World) Clear() {
	w.Positions.ClearAllComponents()
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// EntityCount returns the number of entities holding a position
func (w *World) EntityCount() int {
	return w.Positions.CountEntities()
}

// AddSystem adds a system to the world keeping ascending priority order
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	if w.Resources.Time == nil {
		return 0
	}
	return w.Resources.Time.FrameNumber
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resources.Event == nil {
		return // Not yet initialized
	}
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}
