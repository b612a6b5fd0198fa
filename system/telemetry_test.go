package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
)

type countingAudio struct {
	played []core.SoundType
}

func (a *countingAudio) Play(st core.SoundType) bool {
	a.played = append(a.played, st)
	return true
}
func (a *countingAudio) ToggleMute() bool { return false }
func (a *countingAudio) IsMuted() bool    { return false }

func TestTelemetryCounters(t *testing.T) {
	h := newHarness(t, 20, 20, crab, starfish)
	h.spawn(1, 5, 5, component.DirUp)
	h.ticks(3)

	ints := h.world().Resources.Status.Counters
	assert.Equal(t, int64(3), ints.Get("tick").Load())
	assert.Equal(t, int64(1), ints.Get("players.alive").Load())
	assert.Equal(t, int64(1), ints.Get("players.spawned").Load())
	assert.Equal(t, int64(3), ints.Get("segments.total").Load())
	assert.Equal(t, int64(4), ints.Get("entities.total").Load())
	assert.Equal(t, int64(1), ints.Get("events.seen").Load(), "one spawn event")
}

func TestAudioSystemPlaysRequests(t *testing.T) {
	h := newHarness(t, 10, 10, crab)
	audio := &countingAudio{}
	h.world().Resources.Audio = &engine.AudioResource{Player: audio}

	h.spawn(1, 9, 5, component.DirRight)
	h.tick()

	assert.Equal(t, []core.SoundType{core.SoundSpawn, core.SoundDeath}, audio.played)
}

func TestAudioSystemWithoutPlayer(t *testing.T) {
	h := newHarness(t, 10, 10, crab)
	h.spawn(1, 9, 5, component.DirRight)

	assert.NotPanics(t, func() { h.tick() })
}
