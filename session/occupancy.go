package session

import (
	"fmt"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// Occupant identifies the segment holding a cell
type Occupant struct {
	Segment core.Entity
	Owner   component.PlayerID
}

// Occupancy is a frozen cell → segment snapshot taken before any head moves
// Overlapping segments resolve to the oldest (lowest entity id) so attribution
// does not depend on map or store iteration order
type Occupancy struct {
	cells map[core.Point]Occupant
}

// PositionLookup resolves an entity's grid position
type PositionLookup func(core.Entity) (core.Point, bool)

// SnapshotOccupancy materializes the occupancy of every segment in s
// A segment without a position breaks the spawn-time pairing invariant and panics
func SnapshotOccupancy(s *Segments, positionOf PositionLookup) *Occupancy {
	occ := &Occupancy{
		cells: make(map[core.Point]Occupant, s.Total()),
	}
	for _, id := range s.Players() {
		for _, e := range s.byPlayer[id] {
			p, ok := positionOf(e)
			if !ok {
				panic(fmt.Sprintf("segment entity %d of player %d has no position", e, id))
			}
			if cur, taken := occ.cells[p]; taken && cur.Segment < e {
				continue
			}
			occ.cells[p] = Occupant{Segment: e, Owner: id}
		}
	}
	return occ
}

// At returns the occupant of p, if any
func (o *Occupancy) At(p core.Point) (Occupant, bool) {
	occ, ok := o.cells[p]
	return occ, ok
}

// Len returns the number of occupied cells
func (o *Occupancy) Len() int {
	return len(o.cells)
}
