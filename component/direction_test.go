package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjapiraatti/furious-purpose/core"
)

func TestTurnsAreInverses(t *testing.T) {
	for _, d := range Directions() {
		assert.Equal(t, d, TurnRight(TurnLeft(d)), "right after left from %s", d)
		assert.Equal(t, d, TurnLeft(TurnRight(d)), "left after right from %s", d)
	}
}

func TestFourTurnsCycle(t *testing.T) {
	for _, d := range Directions() {
		l, r := d, d
		for i := 0; i < 4; i++ {
			l = TurnLeft(l)
			r = TurnRight(r)
		}
		assert.Equal(t, d, l)
		assert.Equal(t, d, r)
	}
}

func TestTurnLeftOrder(t *testing.T) {
	// Left → Down → Right → Up → Left
	assert.Equal(t, DirDown, TurnLeft(DirLeft))
	assert.Equal(t, DirRight, TurnLeft(DirDown))
	assert.Equal(t, DirUp, TurnLeft(DirRight))
	assert.Equal(t, DirLeft, TurnLeft(DirUp))
}

func TestTurnNeverReverses(t *testing.T) {
	for _, d := range Directions() {
		back := d.Delta()
		back.X, back.Y = -back.X, -back.Y
		assert.NotEqual(t, back, TurnLeft(d).Delta())
		assert.NotEqual(t, back, TurnRight(d).Delta())
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want core.Point
	}{
		{DirLeft, core.Point{X: -1}},
		{DirRight, core.Point{X: 1}},
		{DirUp, core.Point{Y: 1}},
		{DirDown, core.Point{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := tt.dir.Delta()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int32(1), abs(got.X)+abs(got.Y))
		})
	}

	assert.Panics(t, func() { _ = Direction(9).Delta() })
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions() {
		got, err := ParseDirection(" " + d.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDirection("UP")
	require.NoError(t, err)
	assert.Equal(t, DirUp, got)

	_, err = ParseDirection("north")
	assert.Error(t, err)

	assert.True(t, DirDown.Valid())
	assert.False(t, Direction(4).Valid())
	assert.Equal(t, "direction(7)", Direction(7).String())
}

func TestPositionPoint(t *testing.T) {
	p := core.Point{X: 3, Y: -2}
	assert.Equal(t, p, PositionAt(p).Point())
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
