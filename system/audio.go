package system

import (
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates an audio system
// Requests are dropped while no player is bridged into World.Resources
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSoundRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	audio := s.world.Resources.Audio
	if audio == nil || audio.Player == nil {
		return
	}
	if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		audio.Player.Play(payload.Sound)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
