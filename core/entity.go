package core

// Entity is a unique identifier for an entity
// Zero is never issued and marks "no entity"
type Entity uint64

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int32
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}
