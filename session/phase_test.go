package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseBootSequence(t *testing.T) {
	m := NewPhaseMachine()
	var seen []Phase
	m.OnTransition(func(_, to Phase) { seen = append(seen, to) })

	assert.Equal(t, PhaseLoading, m.Current())
	m.Advance()
	m.Advance()
	assert.False(t, m.InGame())
	m.Advance()
	assert.True(t, m.InGame())

	// No-op once in game
	m.Advance()
	assert.Equal(t, PhaseGame, m.Current())
	assert.Equal(t, []Phase{PhaseSplash, PhaseMainMenu, PhaseGame}, seen)
}

func TestPhaseTransitions(t *testing.T) {
	m := NewPhaseMachine()
	assert.Error(t, m.Transition(PhaseGame), "loading cannot jump to game")
	assert.Equal(t, PhaseLoading, m.Current())

	m.Advance()
	m.Advance()
	m.Advance()

	require.NoError(t, m.Transition(PhasePaused))
	assert.False(t, m.InGame())
	assert.False(t, m.CanTransition(PhaseGameOver))
	require.NoError(t, m.Transition(PhaseGame))
	require.NoError(t, m.Transition(PhaseGameOver))
	assert.True(t, m.CanTransition(PhaseGame))
	require.NoError(t, m.Transition(PhaseMainMenu))
	assert.Error(t, m.Transition(PhasePaused))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "GameOver", PhaseGameOver.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
}
