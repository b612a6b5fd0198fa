// Package system holds the per-tick game systems
// Each tick runs them in ascending priority: spawn, turn, movement, death,
// growth, round, then the audio and telemetry sinks
package system

import "github.com/ninjapiraatti/furious-purpose/engine"

// Constructor builds a system bound to a world
type Constructor func(world *engine.World) engine.System

// Pipeline lists every gameplay system constructor in execution order
var Pipeline = []Constructor{
	NewSpawnSystem,
	NewTurnSystem,
	NewMovementSystem,
	NewDeathSystem,
	NewGrowthSystem,
	NewRoundSystem,
	NewAudioSystem,
	NewTelemetrySystem,
}

// Install constructs the pipeline against ctx's world and registers it
func Install(ctx *engine.GameContext) {
	for _, build := range Pipeline {
		ctx.AddSystem(build(ctx.World))
	}
}
