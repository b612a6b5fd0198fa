// Package render projects the arena grid onto terminal cells and draws the session
package render

import (
	"math"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// project maps a game coordinate to the centre of its tile in a window whose
// origin sits at the window centre
func project(pos, boundWindow, boundGame float64) float64 {
	tile := boundWindow / boundGame
	return pos/boundGame*boundWindow - boundWindow/2 + tile/2
}

// Translate maps an arena position to a cell of a w×h viewport
// Arena Y grows upwards, terminal rows grow downwards, so rows are flipped
// ok is false for positions outside the arena or an empty viewport
func Translate(p core.Point, arena session.Arena, w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 || !arena.Contains(p) {
		return 0, 0, false
	}
	fw, fh := float64(w), float64(h)
	cx := project(float64(p.X), fw, float64(arena.Width())) + fw/2
	cy := project(float64(p.Y), fh, float64(arena.Height())) + fh/2

	x = clamp(int(math.Floor(cx)), w)
	y = h - 1 - clamp(int(math.Floor(cy)), h)
	return x, y, true
}

func clamp(v, n int) int {
	return max(0, min(v, n-1))
}
