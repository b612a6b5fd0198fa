package component

import "github.com/ninjapiraatti/furious-purpose/core"

// PositionComponent is the integer grid coordinate of heads and segments
// Mutated only by the movement step; legality is checked, not enforced
type PositionComponent struct {
	X, Y int32
}

// Point returns the position as a core.Point
func (p PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// PositionAt builds a PositionComponent from a point
func PositionAt(p core.Point) PositionComponent {
	return PositionComponent{X: p.X, Y: p.Y}
}
