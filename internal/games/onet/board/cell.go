package board

import "fmt"

// TileID identifies a tile kind. NoTile marks an empty cell.
type TileID uint16

// NoTile is the empty sentinel.
const NoTile TileID = 0

// Cell is a (column, row) position on the stored grid, border included.
type Cell struct {
	Column int
	Row    int
}

// C is a convenience constructor for Cell.
func C(column, row int) Cell {
	return Cell{Column: column, Row: row}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Neighbor returns the adjacent cell in direction d.
// The result may lie outside the grid; check it with Grid.InBounds.
func (c Cell) Neighbor(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Column: c.Column + dc, Row: c.Row + dr}
}

// Walk returns the n cells met when stepping from c in direction d,
// starting one step away from c.
func (c Cell) Walk(d Direction, n int) []Cell {
	if n <= 0 {
		return nil
	}
	cells := make([]Cell, 0, n)
	cur := c
	for i := 0; i < n; i++ {
		cur = cur.Neighbor(d)
		cells = append(cells, cur)
	}
	return cells
}

// DirectionTo returns the direction from c to other when both share a
// column or a row. ok is false for identical or unaligned cells.
func (c Cell) DirectionTo(other Cell) (d Direction, ok bool) {
	switch {
	case c.Column == other.Column && c.Row != other.Row:
		if c.Row < other.Row {
			return Down, true
		}
		return Up, true
	case c.Row == other.Row && c.Column != other.Column:
		if c.Column < other.Column {
			return Right, true
		}
		return Left, true
	default:
		return 0, false
	}
}

// DistanceSqr returns the squared Euclidean distance to other.
func (c Cell) DistanceSqr(other Cell) int {
	dc := c.Column - other.Column
	dr := c.Row - other.Row
	return dc*dc + dr*dr
}

// IsNeighbor reports whether other is one orthogonal step away.
func (c Cell) IsNeighbor(other Cell) bool {
	return c.DistanceSqr(other) == 1
}
