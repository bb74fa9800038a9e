// Package snake implements the Hunting Snake simulation: grid maps, the
// snake body, food and gate spawning, scoring, level progression, the
// fixed-interval step loop, and the textual save format.
//
// The package has no terminal or storage dependencies. The platform feeds
// it directions and elapsed time and reads back snapshots, events and a
// rendered screen buffer.
package snake

import "fmt"

// Direction is one of the four movement directions.
// The integer values are part of the save format.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// Add returns p moved by one cell in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Delta returns the unit step for d. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite reports whether a and b point in exactly reverse directions.
func Opposite(a, b Direction) bool {
	return a.Valid() && b.Valid() && a.Opposite() == b
}
