package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
	"github.com/ninjapiraatti/furious-purpose/system"
)

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]rune
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = primary
}

func (c *fakeCanvas) Clear() { c.cells = make(map[[2]int]rune) }
func (c *fakeCanvas) Show()  { c.shown++ }

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		if r, ok := c.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func TestTranslateCornersFlipY(t *testing.T) {
	arena := session.MustArena(10, 10)

	x, y, ok := Translate(core.Point{X: 0, Y: 0}, arena, 10, 10)
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 9, y, "arena origin is the bottom row")

	x, y, ok = Translate(core.Point{X: 9, Y: 9}, arena, 10, 10)
	require.True(t, ok)
	assert.Equal(t, 9, x)
	assert.Equal(t, 0, y)
}

func TestTranslateScalesDown(t *testing.T) {
	arena := session.MustArena(640, 360)

	x, y, ok := Translate(core.Point{X: 639, Y: 359}, arena, 64, 36)
	require.True(t, ok)
	assert.Equal(t, 63, x)
	assert.Equal(t, 0, y)

	x, y, ok = Translate(core.Point{X: 320, Y: 180}, arena, 64, 36)
	require.True(t, ok)
	assert.Equal(t, 32, x)
	assert.Equal(t, 17, y)
}

func TestTranslateRejects(t *testing.T) {
	arena := session.MustArena(10, 10)

	_, _, ok := Translate(core.Point{X: 10, Y: 0}, arena, 10, 10)
	assert.False(t, ok)
	_, _, ok = Translate(core.Point{X: -1, Y: 0}, arena, 10, 10)
	assert.False(t, ok)
	_, _, ok = Translate(core.Point{X: 1, Y: 1}, arena, 0, 10)
	assert.False(t, ok)
}

func TestDrawField(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(10, 10, engine.TestPlayer{ID: 1, Name: "Cookie Crab", Left: "a", Right: "s"})
	system.Install(ctx)

	system.SpawnPlayer(ctx.World, 1, core.Point{X: 2, Y: 0}, component.DirRight)
	ctx.Tick()

	canvas := newFakeCanvas(10, 10+parameter.TopMargin+parameter.BottomMargin)
	NewRenderer(canvas).Draw(ctx)

	assert.Equal(t, 1, canvas.shown)
	assert.True(t, strings.HasPrefix(canvas.row(0), " Cookie Cr"), "score board on the top row, clipped")

	bottom := canvas.row(parameter.TopMargin + 9)
	assert.Equal(t, 'o', []rune(bottom)[2], "segment on the cell the head left")
	assert.Equal(t, '@', []rune(bottom)[3], "head one cell right")
}

func TestDrawPhases(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(10, 10, engine.TestPlayer{ID: 1, Name: "P1", Left: "a", Right: "s"})
	canvas := newFakeCanvas(60, 12)
	r := NewRenderer(canvas)

	require.NoError(t, ctx.Phase().Transition(session.PhasePaused))
	r.Draw(ctx)
	assert.Contains(t, canvas.row(6), strings.TrimSpace(parameter.PausedText))

	require.NoError(t, ctx.Phase().Transition(session.PhaseGame))
	require.NoError(t, ctx.Phase().Transition(session.PhaseGameOver))
	r.Draw(ctx)
	assert.Contains(t, canvas.row(6), "ROUND OVER")

	require.NoError(t, ctx.Phase().Transition(session.PhaseMainMenu))
	r.Draw(ctx)
	assert.Contains(t, canvas.row(6), "ANINMALS")
}

func TestStatusLineFollowsMuteFlag(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(10, 10, engine.TestPlayer{ID: 1, Name: "P1", Left: "a", Right: "s"})
	canvas := newFakeCanvas(60, 12)
	r := NewRenderer(canvas)

	r.Draw(ctx)
	assert.NotContains(t, canvas.row(11), parameter.AudioStr, "no audio resource, no note")

	ctx.World.Resources.Audio = &engine.AudioResource{}
	r.Draw(ctx)
	assert.True(t, strings.HasPrefix(canvas.row(11), parameter.AudioStr))

	ctx.World.Resources.Status.Flags.Get("audio.muted").Store(true)
	r.Draw(ctx)
	assert.NotContains(t, canvas.row(11), parameter.AudioStr)
}
