package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// Canvas is the subset of tcell.Screen the renderer draws on
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Renderer draws the game context onto a canvas
// Call only from the tick goroutine, after a tick, so the world is quiescent
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer for canvas
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Draw renders one frame: score board, play field and status line
func (r *Renderer) Draw(ctx *engine.GameContext) {
	r.canvas.Clear()
	w, h := r.canvas.Size()

	phase := ctx.Phase().Current()
	switch phase {
	case session.PhaseLoading, session.PhaseSplash:
		r.centered(w, h/2, parameter.SplashText, tcell.StyleDefault.Bold(true))
	case session.PhaseMainMenu:
		r.centered(w, h/2, parameter.MenuText, tcell.StyleDefault)
	default:
		r.drawScores(ctx, w)
		r.drawField(ctx, w, h-parameter.TopMargin-parameter.BottomMargin)
		r.drawStatus(ctx, w, h-1)
		switch phase {
		case session.PhasePaused:
			r.centered(w, h/2, parameter.PausedText, tcell.StyleDefault.Reverse(true))
		case session.PhaseGameOver:
			r.centered(w, h/2, parameter.GameOverText, tcell.StyleDefault.Reverse(true))
		}
	}

	r.canvas.Show()
}

func (r *Renderer) drawScores(ctx *engine.GameContext, w int) {
	x := 1
	for _, s := range ctx.State().Standings() {
		style := spriteStyle(ctx.World, s.Name).Dim(!s.Alive)
		x = r.text(x, 0, w, fmt.Sprintf("%s %d", s.Name, s.Score), style) + 2
	}
}

func (r *Renderer) drawField(ctx *engine.GameContext, w, h int) {
	world := ctx.World
	arena := ctx.State().Arena

	segments := world.Query().With(world.Positions).With(world.Components.Segment).Execute()
	for _, e := range segments {
		r.plot(world, e, arena, w, h, false)
	}
	heads := world.Query().With(world.Positions).With(world.Components.Head).Execute()
	for _, e := range heads {
		r.plot(world, e, arena, w, h, true)
	}
}

func (r *Renderer) plot(world *engine.World, e core.Entity, arena session.Arena, w, h int, head bool) {
	p, ok := world.Positions.GetPosition(e)
	if !ok {
		return
	}
	x, y, ok := Translate(p, arena, w, h)
	if !ok {
		return
	}
	sprite, _ := world.Components.Sprite.GetComponent(e)
	glyph := sprite.Segment
	if head {
		glyph = sprite.Glyph
	}
	if glyph == 0 {
		glyph = '#'
	}
	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(sprite.Color)))
	r.canvas.SetContent(x, y+parameter.TopMargin, glyph, nil, style)
}

func (r *Renderer) drawStatus(ctx *engine.GameContext, w, row int) {
	reg := ctx.World.Resources.Status
	ints := reg.Counters
	line := fmt.Sprintf("%s  tick %d  alive %d  segments %d",
		ctx.Phase().Current(),
		ints.Get("tick").Load(),
		ints.Get("players.alive").Load(),
		ints.Get("segments.total").Load(),
	)
	if ctx.World.Resources.Audio != nil && !reg.Flags.Get("audio.muted").Load() {
		line = parameter.AudioStr + line
	}
	r.text(0, row, w, line, tcell.StyleDefault.Dim(true))
}

func (r *Renderer) centered(w, row int, s string, style tcell.Style) {
	x := max(0, (w-len([]rune(s)))/2)
	r.text(x, row, w, s, style)
}

// text writes s from column x, clipped at w, and returns the column after it
func (r *Renderer) text(x, y, w int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= w {
			break
		}
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func spriteStyle(world *engine.World, name string) tcell.Style {
	assets := world.Resources.Assets
	if assets == nil || assets.Sprites == nil {
		return tcell.StyleDefault
	}
	sprite := assets.Sprites.Sprite(name)
	return tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(sprite.Color)))
}
