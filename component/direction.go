package component

import (
	"fmt"
	"strings"

	"github.com/ninjapiraatti/furious-purpose/core"
)

// Direction is one of the four cardinal headings of a head
type Direction uint8

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
	dirCount
)

// Clockwise order: Left → Up → Right → Down → Left
// TurnRight advances one step, TurnLeft steps back

// TurnLeft rotates counter-clockwise by one quarter
func TurnLeft(d Direction) Direction {
	return (d + dirCount - 1) % dirCount
}

// TurnRight rotates clockwise by one quarter
func TurnRight(d Direction) Direction {
	return (d + 1) % dirCount
}

// Delta returns the unit grid step for the direction, +Y is up
func (d Direction) Delta() core.Point {
	switch d {
	case DirLeft:
		return core.Point{X: -1}
	case DirRight:
		return core.Point{X: 1}
	case DirUp:
		return core.Point{Y: 1}
	case DirDown:
		return core.Point{Y: -1}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d < dirCount
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", d)
	}
}

// ParseDirection resolves a config name (case-insensitive) to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Directions lists all headings in clockwise order
func Directions() []Direction {
	return []Direction{DirLeft, DirUp, DirRight, DirDown}
}
