package engine

import (
	"github.com/ninjapiraatti/furious-purpose/component"
)

// ComponentStore holds the typed component stores of the world
// Systems cache the struct once; pointers remain valid for application lifetime
type ComponentStore struct {
	Player  *Store[component.PlayerComponent]
	Head    *Store[component.HeadComponent]
	Segment *Store[component.SegmentComponent]
	Sprite  *Store[component.SpriteComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Player:  NewStore[component.PlayerComponent](),
		Head:    NewStore[component.HeadComponent](),
		Segment: NewStore[component.SegmentComponent](),
		Sprite:  NewStore[component.SpriteComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs ComponentStore) all() []AnyStore {
	return []AnyStore{cs.Player, cs.Head, cs.Segment, cs.Sprite}
}
