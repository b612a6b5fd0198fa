package session

import (
	"github.com/ninjapiraatti/furious-purpose/component"
)

// Player is the session record of one roster participant
type Player struct {
	ID      component.PlayerID
	Name    string
	Alive   bool
	Spawned bool // Has entered the arena at least once
	Score   uint32
	Deaths  uint32
}

// UnknownPlayer is the fallback record for lookups of unregistered ids
var UnknownPlayer = Player{Name: "unknown"}

// Standing is one row of the score board
type Standing struct {
	ID    component.PlayerID
	Name  string
	Score uint32
	Alive bool
}
