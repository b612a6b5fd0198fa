package parameter

// System Execution Priorities (lower runs first)
// Order is the tick contract: spawn input, turn input, movement+judging,
// deferred removal, growth, then observers
const (
	PrioritySpawn     = 10
	PriorityTurn      = 20
	PriorityMovement  = 30 // Snapshot occupancy, advance heads, judge deaths
	PriorityDeath     = 40 // Apply removals judged by movement
	PriorityGrowth    = 50 // Surviving heads lay one segment
	PriorityRound     = 60 // Round-over detection after removals settle
	PriorityAudio     = 900
	PriorityTelemetry = 1000 // After all others, telemetry collection
)
