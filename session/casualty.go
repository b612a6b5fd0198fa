package session

import (
	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// DeathCause classifies why a head was judged dead
type DeathCause uint8

const (
	CauseBounds  DeathCause = iota + 1 // Left the arena
	CauseSelf                          // Stepped onto own segment
	CauseSegment                       // Stepped onto another player's segment
)

func (c DeathCause) String() string {
	switch c {
	case CauseBounds:
		return "bounds"
	case CauseSelf:
		return "self"
	case CauseSegment:
		return "segment"
	default:
		return "none"
	}
}

// Casualty is a death judged this tick and awaiting removal
type Casualty struct {
	Victim component.PlayerID
	Cause  DeathCause
	Killer component.PlayerID // Segment owner, NoPlayer for bounds deaths
	At     core.Point         // Post-move head cell
}
