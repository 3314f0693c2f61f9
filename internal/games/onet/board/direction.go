// Package board implements the connection engine for the Onet puzzle:
// a bordered tile grid, ray casting, the overlap/crossed/bridge connector,
// the turn-limited search track and the shadow matcher used to detect
// whether any move is left.
//
// The package is pure logic with no UI dependencies. All queries are
// read-only over a Grid snapshot; callers must not mutate a Grid while a
// query against it is running.
package board

// Direction is one of the four straight moves on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in enumeration order.
// Strategies iterate in this order, so it decides tie-breaks.
var Directions = [4]Direction{Up, Down, Left, Right}

// Axis is the line a direction travels along.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dc, dr) offset for one step in this direction.
// Up decreases the row, Down increases it (screen coordinates).
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Axis returns Vertical for Up/Down and Horizontal for Left/Right.
func (d Direction) Axis() Axis {
	if d == Up || d == Down {
		return Vertical
	}
	return Horizontal
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// IsOpposite reports whether other points the reverse way.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other && d != other
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}
