package engine

import (
	"math/rand/v2"
	"time"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/session"
	"github.com/ninjapiraatti/furious-purpose/status"
)

// Resource holds singleton game resources, initialized during GameContext creation, accessed via World.Resources
type Resource struct {
	// World Resource
	Time    *TimeResource
	Session *session.State
	Phase   *session.PhaseMachine
	Input   *InputResource
	Spawn   *SpawnResource
	Event   *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged resources from host services, nil when unavailable
	Audio  *AudioResource
	Assets *AssetResource
}

// === World Resources ===

// TimeResource wraps tick timing for systems
// Updated by GameContext at the start of each game tick
type TimeResource struct {
	// GameTime advances by the tick interval per game tick (stops while paused)
	GameTime time.Time

	// RealTime is the wall-clock time of the tick
	RealTime time.Time

	// DeltaTime is the fixed tick interval
	DeltaTime time.Duration

	// FrameNumber is the count of game ticks executed
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// InputResource exposes the sampled keyboard and the per-player key pairs
type InputResource struct {
	Source   input.Source
	Bindings []input.Binding // Ascending by player id
}

// SpawnPoint is a fixed start cell and heading
type SpawnPoint struct {
	At        core.Point
	Direction component.Direction
}

// SpawnResource holds the spawn position policy
type SpawnResource struct {
	Mode     string // parameter.SpawnModeRandom or parameter.SpawnModeFixed
	Margin   uint32
	Attempts int
	Starts   map[component.PlayerID]SpawnPoint

	// Respawn allows dead players back in on key press
	Respawn bool

	// AutoSpawn enters every roster player when the Game phase starts
	AutoSpawn bool

	Rand *rand.Rand
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.Queue
}

// === Bridged Resources from Service ===

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// SpriteProvider resolves a player's visual by display name
// Unknown names resolve to a default sprite
type SpriteProvider interface {
	Sprite(name string) component.SpriteComponent
}

// AssetResource wraps the sprite provider
type AssetResource struct {
	Sprites SpriteProvider
}
