package system

import (
	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// TurnSystem rotates live heads on edge-triggered key presses
// At most one rotation per head per tick; left wins when both keys fire
type TurnSystem struct {
	world *engine.World

	enabled bool
}

// NewTurnSystem creates the turn-input system
func NewTurnSystem(world *engine.World) engine.System {
	s := &TurnSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TurnSystem) Init() {
	s.enabled = true
}

func (s *TurnSystem) Name() string {
	return "turn"
}

func (s *TurnSystem) Priority() int {
	return parameter.PriorityTurn
}

func (s *TurnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *TurnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *TurnSystem) Update() {
	if !s.enabled {
		return
	}

	state := s.world.Resources.Session
	src := s.world.Resources.Input.Source
	frame := s.world.FrameNumber()
	heads := s.world.Components.Head

	// Bindings are kept in ascending player order
	for _, b := range s.world.Resources.Input.Bindings {
		if !state.IsAlive(b.Player) {
			continue
		}
		e := state.Head(b.Player)
		head := heads.MustGetComponent(e, "head")
		if head.Born == frame {
			continue
		}

		left, right := b.Turn(src)
		switch {
		case left:
			head.Direction = component.TurnLeft(head.Direction)
		case right:
			head.Direction = component.TurnRight(head.Direction)
		default:
			continue
		}
		heads.SetComponent(e, head)
	}
}
