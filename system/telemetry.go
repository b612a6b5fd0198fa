package system

import (
	"sync/atomic"

	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// TelemetrySystem publishes per-tick counters for the debug status line
type TelemetrySystem struct {
	world *engine.World

	statTick     *atomic.Int64
	statAlive    *atomic.Int64
	statSpawned  *atomic.Int64
	statSegments *atomic.Int64
	statEntities *atomic.Int64
	statEvents   *atomic.Int64

	enabled bool
}

// NewTelemetrySystem creates the telemetry publisher
func NewTelemetrySystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &TelemetrySystem{
		world:        world,
		statTick:     reg.Counters.Get("tick"),
		statAlive:    reg.Counters.Get("players.alive"),
		statSpawned:  reg.Counters.Get("players.spawned"),
		statSegments: reg.Counters.Get("segments.total"),
		statEntities: reg.Counters.Get("entities.total"),
		statEvents:   reg.Counters.Get("events.seen"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TelemetrySystem) Init() {
	s.statTick.Store(0)
	s.statEvents.Store(0)
	s.enabled = true
}

func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

func (s *TelemetrySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventPlayerSpawned,
		event.EventPlayerDied,
		event.EventScoreAwarded,
		event.EventRoundOver,
	}
}

func (s *TelemetrySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.statEvents.Add(1)
}

func (s *TelemetrySystem) Update() {
	if !s.enabled {
		return
	}

	state := s.world.Resources.Session
	s.statTick.Store(s.world.FrameNumber())
	s.statAlive.Store(int64(state.AliveCount()))
	s.statSpawned.Store(int64(state.SpawnedCount()))
	s.statSegments.Store(int64(state.Segments.Total()))
	s.statEntities.Store(int64(s.world.EntityCount()))
}
