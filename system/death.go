package system

import (
	"log"
	"sync/atomic"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// DeathSystem applies the casualties judged by movement
// A dead player's head and whole trail leave the world in one batch
type DeathSystem struct {
	world *engine.World

	statDeaths *atomic.Int64
	statPoints *atomic.Int64

	enabled bool
}

// NewDeathSystem creates the casualty removal system
func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		world: world,
	}
	s.statDeaths = world.Resources.Status.Counters.Get("death.count")
	s.statPoints = world.Resources.Status.Counters.Get("death.points")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DeathSystem) Init() {
	s.statDeaths.Store(0)
	s.statPoints.Store(0)
	s.enabled = true
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *DeathSystem) Update() {
	state := s.world.Resources.Session
	if !s.enabled || len(state.Casualties) == 0 {
		return
	}

	for _, c := range state.Casualties {
		victim := state.Lookup(c.Victim)

		doomed := state.Segments.Clear(c.Victim)
		trail := len(doomed)
		if head := state.Head(c.Victim); head != 0 {
			doomed = append(doomed, head)
		}
		s.world.DestroyBatch(doomed)
		state.MarkDead(c.Victim)
		s.statDeaths.Add(1)

		s.world.PushEvent(event.EventPlayerDied, &event.PlayerDiedPayload{
			Player:   c.Victim,
			Cause:    c.Cause.String(),
			Killer:   c.Killer,
			At:       c.At,
			Segments: trail,
		})
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDeath})
		log.Printf("[death] %s (%d) at (%d,%d): %s, trail %d", victim.Name, c.Victim, c.At.X, c.At.Y, c.Cause, trail)

		if state.Award(c) {
			killer := state.Lookup(c.Killer)
			s.statPoints.Add(1)
			s.world.PushEvent(event.EventScoreAwarded, &event.ScoreAwardedPayload{
				Player: c.Killer,
				Victim: c.Victim,
				Score:  killer.Score,
			})
			s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundScore})
			log.Printf("[death] %s (%d) scores, now %d", killer.Name, c.Killer, killer.Score)
		}
	}
	state.Casualties = state.Casualties[:0]
}
