package engine

import (
	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// TestPlayer describes a roster entry for NewTestGameContext
type TestPlayer struct {
	ID    component.PlayerID
	Name  string
	Left  input.Key
	Right input.Key
}

// NewTestGameContext creates a GameContext already in the Game phase with a
// fixed-seed random spawn policy and an auto-release key state
// This is a test helper shared by package tests; it registers no systems
func NewTestGameContext(width, height uint32, players ...TestPlayer) (*GameContext, *input.State) {
	state := session.NewState(session.MustArena(width, height))
	bindings := make([]input.Binding, 0, len(players))
	for _, p := range players {
		if err := state.Register(p.ID, p.Name); err != nil {
			panic(err)
		}
		bindings = append(bindings, input.Binding{Player: p.ID, Left: p.Left, Right: p.Right})
	}

	keys := input.NewState(true)
	ctx := NewGameContext(ContextOptions{
		State:    state,
		Source:   keys,
		Bindings: bindings,
		Spawn: SpawnResource{
			Mode:     parameter.SpawnModeRandom,
			Margin:   1,
			Attempts: parameter.SpawnAttempts,
			Respawn:  true,
		},
		Interval: parameter.GameUpdateInterval,
		Seed:     1,
	})

	ctx.Phase().Advance() // Splash
	ctx.Phase().Advance() // MainMenu
	ctx.Phase().Advance() // Game
	ctx.eventQueue.Clear()

	return ctx, keys
}
