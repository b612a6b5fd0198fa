package engine

import (
	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// PositionStore is a specialized store for PositionComponent that maintains
// a spatial index for cell queries; several entities may share a cell
type PositionStore struct {
	*Store[component.PositionComponent]
	spatialIndex map[core.Point][]core.Entity
}

// NewPositionStore creates a new position store with spatial indexing
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store:        NewStore[component.PositionComponent](),
		spatialIndex: make(map[core.Point][]core.Entity),
	}
}

// SetPosition inserts or moves an entity, keeping the spatial index consistent
func (ps *PositionStore) SetPosition(e core.Entity, pos component.PositionComponent) {
	if old, exists := ps.Store.GetComponent(e); exists {
		ps.unindex(e, old.Point())
	}
	ps.Store.SetComponent(e, pos)
	p := pos.Point()
	ps.spatialIndex[p] = append(ps.spatialIndex[p], e)
}

// SetComponent routes through SetPosition so the index cannot be bypassed
func (ps *PositionStore) SetComponent(e core.Entity, pos component.PositionComponent) {
	ps.SetPosition(e, pos)
}

// GetPosition returns the entity's grid point
func (ps *PositionStore) GetPosition(e core.Entity) (core.Point, bool) {
	pos, ok := ps.Store.GetComponent(e)
	return pos.Point(), ok
}

// RemoveEntity removes the entity from the store and the spatial index
func (ps *PositionStore) RemoveEntity(e core.Entity) {
	if pos, exists := ps.Store.GetComponent(e); exists {
		ps.unindex(e, pos.Point())
	}
	ps.Store.RemoveEntity(e)
}

// RemoveBatch removes several entities from the store and the spatial index
func (ps *PositionStore) RemoveBatch(entities []core.Entity) {
	for _, e := range entities {
		if pos, exists := ps.Store.GetComponent(e); exists {
			ps.unindex(e, pos.Point())
		}
	}
	ps.Store.RemoveBatch(entities)
}

// HasAnyAt reports whether any entity occupies p
func (ps *PositionStore) HasAnyAt(p core.Point) bool {
	return len(ps.spatialIndex[p]) > 0
}

// ClearAllComponents clears the store and the spatial index
func (ps *PositionStore) ClearAllComponents() {
	ps.Store.ClearAllComponents()
	ps.spatialIndex = make(map[core.Point][]core.Entity)
}

func (ps *PositionStore) unindex(e core.Entity, p core.Point) {
	list := ps.spatialIndex[p]
	for i, other := range list {
		if other == e {
			list[i] = list[len(list)-1]
			list = list[:len(list)-1]
			break
		}
	}
	if len(list) == 0 {
		delete(ps.spatialIndex, p)
		return
	}
	ps.spatialIndex[p] = list
}
