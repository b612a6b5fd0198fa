package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/session"
)

func TestRoundOverWithLastSurvivor(t *testing.T) {
	h := newHarness(t, 10, 10, crab, starfish)
	h.world().Resources.Spawn.Respawn = false
	h.spawn(1, 9, 5, component.DirRight)
	h.spawn(2, 2, 2, component.DirUp)

	h.tick()

	over := h.rec.of(event.EventRoundOver)
	require.Len(t, over, 1)
	assert.Equal(t, component.PlayerID(2), over[0].Payload.(*event.RoundOverPayload).Winner)
	assert.Equal(t, session.PhaseGameOver, h.game.Phase().Current())

	frame := h.game.Frame()
	h.tick()
	assert.Equal(t, frame, h.game.Frame(), "systems stop outside the Game phase")
}

func TestRoundStaysOpenWithRespawn(t *testing.T) {
	h := newHarness(t, 10, 10, crab, starfish)
	h.spawn(1, 9, 5, component.DirRight)
	h.spawn(2, 2, 2, component.DirUp)

	h.tick()

	assert.Empty(t, h.rec.of(event.EventRoundOver))
	assert.Equal(t, session.PhaseGame, h.game.Phase().Current())
}

func TestSoloRoundEndsOnDeath(t *testing.T) {
	h := newHarness(t, 10, 10, crab)
	h.world().Resources.Spawn.Respawn = false
	h.spawn(1, 5, 5, component.DirUp)

	h.ticks(4)
	assert.Empty(t, h.rec.of(event.EventRoundOver), "a lone live player keeps the round open")

	h.ticks(1)
	over := h.rec.of(event.EventRoundOver)
	require.Len(t, over, 1)
	assert.Equal(t, component.NoPlayer, over[0].Payload.(*event.RoundOverPayload).Winner)
}

func TestNewGameAfterRoundOverResets(t *testing.T) {
	h := newHarness(t, 10, 10, crab, starfish)
	h.world().Resources.Spawn.Respawn = false
	h.spawn(1, 5, 2, component.DirUp)
	h.spawn(2, 2, 2, component.DirUp)
	h.ticks(3)
	p, _ := h.game.State().Player(2)
	p.Score = 4

	h.killCrab(t)
	require.Equal(t, session.PhaseGameOver, h.game.Phase().Current())

	require.NoError(t, h.game.Phase().Transition(session.PhaseGame))
	h.tick()

	state := h.game.State()
	assert.Zero(t, state.SpawnedCount())
	assert.Zero(t, h.world().EntityCount())
	assert.Zero(t, state.Segments.Total())
	assert.Zero(t, h.player(2).Score)
	assert.Equal(t, int64(1), h.game.Frame(), "frame counter restarted")
}

// killCrab steers the crab left until it dies on a trail or the edge
func (h *harness) killCrab(t *testing.T) {
	t.Helper()
	h.tick(crab.Left)
	for range 10 {
		if !h.game.State().IsAlive(1) {
			return
		}
		h.tick()
	}
	t.Fatal("crab never died")
}
