package engine

import (
	"strconv"

	"github.com/ninjapiraatti/furious-purpose/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World manages all stores uniformly for entity destruction without knowing the concrete type
type AnyStore interface {
	RemoveEntity(e core.Entity)
	RemoveBatch(entities []core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}

// QueryableStore extends AnyStore with the listing needed by the query builder
type QueryableStore interface {
	AnyStore
	GetAllEntities() []core.Entity
}

func entityString(e core.Entity) string {
	return strconv.FormatUint(uint64(e), 10)
}
