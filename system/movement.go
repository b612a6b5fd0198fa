package system

import (
	"fmt"
	"sync/atomic"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// MovementSystem advances every live head one cell and judges the new cell
// Judgement reads an occupancy snapshot taken before the first head moves, so
// the outcome does not depend on the order heads are processed in
// Casualties are recorded on the session state; removal is the death system's job
type MovementSystem struct {
	world *engine.World

	statMoves    *atomic.Int64
	statOccupied *atomic.Int64

	enabled bool
}

// NewMovementSystem creates the movement and collision system
func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world: world,
	}
	s.statMoves = world.Resources.Status.Counters.Get("movement.moves")
	s.statOccupied = world.Resources.Status.Counters.Get("movement.occupied")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *MovementSystem) Init() {
	s.statMoves.Store(0)
	s.statOccupied.Store(0)
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *MovementSystem) Update() {
	if !s.enabled {
		return
	}

	state := s.world.Resources.Session
	occ := session.SnapshotOccupancy(state.Segments, s.world.Positions.GetPosition)
	s.statOccupied.Store(int64(occ.Len()))

	for _, id := range state.IDs() {
		if !state.IsAlive(id) {
			continue
		}
		e := state.Head(id)
		head := s.world.Components.Head.MustGetComponent(e, "head")
		pos := s.world.Positions.MustGetComponent(e, "position")

		head.Previous = pos
		next := component.PositionAt(pos.Point().Add(head.Direction.Delta()))
		s.world.Components.Head.SetComponent(e, head)
		s.world.Positions.SetPosition(e, next)
		s.statMoves.Add(1)

		if c, dead := Judge(id, next.Point(), state.Arena, occ); dead {
			state.Casualties = append(state.Casualties, c)
		}
	}
}

// Judge decides whether a head of player id standing on p dies
// Bounds are checked first, then the pre-move segment occupancy
func Judge(id component.PlayerID, p core.Point, arena session.Arena, occ *session.Occupancy) (session.Casualty, bool) {
	if !arena.Contains(p) {
		return session.Casualty{Victim: id, Cause: session.CauseBounds, At: p}, true
	}
	o, hit := occ.At(p)
	if !hit {
		return session.Casualty{}, false
	}
	if o.Owner == component.NoPlayer {
		panic(fmt.Sprintf("segment %d at (%d,%d) has no owner", o.Segment, p.X, p.Y))
	}
	if o.Owner == id {
		return session.Casualty{Victim: id, Cause: session.CauseSelf, Killer: id, At: p}, true
	}
	return session.Casualty{Victim: id, Cause: session.CauseSegment, Killer: o.Owner, At: p}, true
}
