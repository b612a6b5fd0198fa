// Package session owns the per-session mutable game state: arena bounds,
// player records, segment lists, scores and the screen phase.
// Systems receive it through engine.Resource and are its only writers.
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/ninjapiraatti/furious-purpose/core"
)

// ErrInvalidArena is returned for arenas with a zero dimension or one that
// int32 grid coordinates cannot address
var ErrInvalidArena = errors.New("arena dimensions must be in 1..MaxInt32")

// Arena is the immutable legal coordinate space [0,Width)×[0,Height)
type Arena struct {
	width, height uint32
}

// NewArena validates and returns an arena
func NewArena(width, height uint32) (Arena, error) {
	if width == 0 || height == 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return Arena{}, fmt.Errorf("%w: %dx%d", ErrInvalidArena, width, height)
	}
	return Arena{width: width, height: height}, nil
}

// MustArena panics on invalid dimensions, for tests and compiled defaults
func MustArena(width, height uint32) Arena {
	a, err := NewArena(width, height)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Arena) Width() uint32  { return a.width }
func (a Arena) Height() uint32 { return a.height }

// Contains reports whether p lies inside the arena
func (a Arena) Contains(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && int64(p.X) < int64(a.width) && int64(p.Y) < int64(a.height)
}

// Interior returns the inclusive-exclusive spawn rectangle shrunk by margin on every side
// Margin collapses to zero when the arena is too small to honor it
func (a Arena) Interior(margin uint32) (minX, minY, maxX, maxY int32) {
	if 2*margin >= a.width || 2*margin >= a.height {
		margin = 0
	}
	return int32(margin), int32(margin), int32(a.width - margin), int32(a.height - margin)
}
