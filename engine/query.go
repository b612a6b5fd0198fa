package engine

import (
	"slices"
	"sort"

	"github.com/ninjapiraatti/furious-purpose/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection
// The query starts from the smallest store and filters through larger ones
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations
//
// Example:
//
//	heads := world.Query().
//	    With(world.Positions).
//	    With(world.Components.Head).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the entities present in every store, ascending by entity ID
// Calling Execute() multiple times returns the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes the number of HasEntity checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntities() < qb.stores[j].CountEntities()
	})

	candidates := qb.stores[0].GetAllEntities()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	slices.Sort(candidates)
	qb.results = candidates
	return qb.results
}
