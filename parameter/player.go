package parameter

// ArenaWidth and ArenaHeight fill an 80x24 terminal below the score line
const (
	ArenaWidth  = 80
	ArenaHeight = 22
)

// Classic arena, selected with -classic
const (
	ClassicArenaWidth  = 640
	ClassicArenaHeight = 360
)

// Spawn defaults
const (
	// SpawnMargin keeps random spawns this many cells away from every edge
	SpawnMargin = 3

	// SpawnAttempts bounds redraws when a random cell is already occupied
	SpawnAttempts = 16
)

// Spawn position policies
const (
	SpawnModeRandom = "random"
	SpawnModeFixed  = "fixed"
)

// MaxPlayers is the hot-seat roster limit
const MaxPlayers = 8
