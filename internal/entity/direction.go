// Package entity provides the player, enemies and items.
package entity

// Direction is one of the four movement directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the coordinate change for one step in this direction.
// East steps two columns; every other direction steps one cell.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 2, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
