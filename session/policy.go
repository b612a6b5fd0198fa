package session

import "github.com/ninjapiraatti/furious-purpose/component"

// ScoreRule decides whether a casualty awards its killer a point
type ScoreRule func(c Casualty) bool

// AwardOtherOwner awards the segment owner only when it is not the victim
// Self-collision is fatal without score, bounds deaths award nobody
func AwardOtherOwner(c Casualty) bool {
	return c.Cause == CauseSegment && c.Killer != component.NoPlayer && c.Killer != c.Victim
}

// RespawnPolicy maps a dead player's record to its state on re-entering the arena
type RespawnPolicy func(p Player) Player

// PersistScore keeps the session-cumulative score across lives
func PersistScore(p Player) Player {
	return p
}

// ResetScore starts every life from zero
func ResetScore(p Player) Player {
	p.Score = 0
	return p
}

// RespawnPolicyByName resolves a config name, ok=false for unknown names
func RespawnPolicyByName(name string) (RespawnPolicy, bool) {
	switch name {
	case "", "persist":
		return PersistScore, true
	case "reset":
		return ResetScore, true
	}
	return nil, false
}
