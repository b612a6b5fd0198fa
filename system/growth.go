package system

import (
	"sync/atomic"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// GrowthSystem lays one segment per surviving player per tick
// The segment goes on the cell the head left this tick
type GrowthSystem struct {
	world *engine.World

	statSegments *atomic.Int64

	enabled bool
}

// NewGrowthSystem creates the trail growth system
func NewGrowthSystem(world *engine.World) engine.System {
	s := &GrowthSystem{
		world: world,
	}
	s.statSegments = world.Resources.Status.Counters.Get("growth.segments")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *GrowthSystem) Init() {
	s.statSegments.Store(0)
	s.enabled = true
}

func (s *GrowthSystem) Name() string {
	return "growth"
}

func (s *GrowthSystem) Priority() int {
	return parameter.PriorityGrowth
}

func (s *GrowthSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *GrowthSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *GrowthSystem) Update() {
	if !s.enabled {
		return
	}

	state := s.world.Resources.Session
	frame := s.world.FrameNumber()

	for _, id := range state.IDs() {
		if !state.IsAlive(id) {
			continue
		}
		e := state.Head(id)
		head := s.world.Components.Head.MustGetComponent(e, "head")
		sprite, _ := s.world.Components.Sprite.GetComponent(e)

		seg := engine.With(
			engine.With(
				engine.With(
					engine.WithPosition(s.world.NewEntity(), head.Previous),
					s.world.Components.Segment, component.SegmentComponent{Owner: id, Tick: frame},
				),
				s.world.Components.Player, component.PlayerComponent{ID: id},
			),
			s.world.Components.Sprite, sprite,
		).Build()

		state.Segments.Append(id, seg)
	}
	s.statSegments.Store(int64(state.Segments.Total()))
}
