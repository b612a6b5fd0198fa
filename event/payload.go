package event

import (
	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// PlayerSpawnedPayload describes a new head
type PlayerSpawnedPayload struct {
	Player    component.PlayerID
	Head      core.Entity
	At        core.Point
	Direction component.Direction
	Respawn   bool
}

// PlayerDiedPayload describes a completed removal
type PlayerDiedPayload struct {
	Player   component.PlayerID
	Cause    string
	Killer   component.PlayerID
	At       core.Point
	Segments int // Trail length at death
}

// ScoreAwardedPayload describes a point given to a segment owner
type ScoreAwardedPayload struct {
	Player component.PlayerID
	Victim component.PlayerID
	Score  uint32
}

// RoundOverPayload names the survivor, NoPlayer when nobody is left
type RoundOverPayload struct {
	Winner component.PlayerID
}

// SoundRequestPayload carries the sound to play
type SoundRequestPayload struct {
	Sound core.SoundType
}
