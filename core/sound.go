package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundSpawn SoundType = iota // Head enters the arena
	SoundDeath                  // Head removed (bounds or segment)
	SoundScore                  // Segment owner awarded a point
	SoundRoundOver              // Last survivor standing
	SoundTypeCount
)

// String returns the sound name used in logs and config
func (s SoundType) String() string {
	switch s {
	case SoundSpawn:
		return "spawn"
	case SoundDeath:
		return "death"
	case SoundScore:
		return "score"
	case SoundRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}
