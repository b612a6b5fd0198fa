package system

import (
	"log"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// RoundSystem ends the round once respawning is off and the field is decided
// A solo round ends when its player dies; a multiplayer round when one or none remain
type RoundSystem struct {
	world *engine.World

	over    bool
	enabled bool
}

// NewRoundSystem creates the round-over detector
func NewRoundSystem(world *engine.World) engine.System {
	s := &RoundSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *RoundSystem) Init() {
	s.over = false
	s.enabled = true
}

func (s *RoundSystem) Name() string {
	return "round"
}

func (s *RoundSystem) Priority() int {
	return parameter.PriorityRound
}

func (s *RoundSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventGameStart,
	}
}

func (s *RoundSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset, event.EventGameStart:
		s.Init()
	}
}

func (s *RoundSystem) Update() {
	if !s.enabled || s.over || s.world.Resources.Spawn.Respawn {
		return
	}

	state := s.world.Resources.Session
	spawned := state.SpawnedCount()
	alive := state.AliveCount()
	if spawned == 0 {
		return
	}
	if alive > 0 && (spawned < 2 || alive > 1) {
		return
	}

	winner := component.NoPlayer
	if alive == 1 {
		for _, id := range state.IDs() {
			if state.IsAlive(id) {
				winner = id
				break
			}
		}
	}

	s.over = true
	s.world.PushEvent(event.EventRoundOver, &event.RoundOverPayload{Winner: winner})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundRoundOver})
	log.Printf("[round] over, winner %s", state.Lookup(winner).Name)
}
