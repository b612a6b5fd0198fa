package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the default fixed tick interval
	GameUpdateInterval = 100 * time.Millisecond

	// MinTickInterval bounds configured tick rates from below
	MinTickInterval = 10 * time.Millisecond

	// SplashDuration is how long the splash phase is held before the menu
	SplashDuration = 1500 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring; must be a power of two
	EventQueueSize = 1024
)
