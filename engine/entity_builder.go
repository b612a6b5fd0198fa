package engine

import (
	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// EntityBuilder stages components for a reserved entity ID and commits them together
// Nothing reaches the stores before Build(), so an entity is never partially constructed
//
// Example usage:
//
//	head := With(
//	    WithPosition(world.NewEntity(), component.PositionComponent{X: 5, Y: 5}),
//	    world.Components.Head, component.HeadComponent{Direction: component.DirUp},
//	).Build()
type EntityBuilder struct {
	world   *World
	entity  core.Entity
	pending []func(core.Entity)
	built   bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// Entity returns the reserved ID
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// With stages a component of type T for the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], val T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.pending = append(eb.pending, func(e core.Entity) {
		store.SetComponent(e, val)
	})
	return eb
}

// WithPosition stages the position component, committed through the spatial index
// Panics if called after Build()
func WithPosition(eb *EntityBuilder, pos component.PositionComponent) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.pending = append(eb.pending, func(e core.Entity) {
		eb.world.Positions.SetPosition(e, pos)
	})
	return eb
}

// Build commits every staged component and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	for _, apply := range eb.pending {
		apply(eb.entity)
	}
	eb.pending = nil
	return eb.entity
}
