package board

import (
	"fmt"
	"strings"
)

// Grid is the play area plus a one-cell border on every side.
// Tiles are stored in row-major order: index = row*columns + column.
//
// Border cells are always empty and always in bounds, so rays and searches
// may travel along them, but they can never be filled.
type Grid struct {
	columns int
	rows    int
	tiles   []TileID
}

// NewGrid creates an empty grid with the requested play area.
// The stored dimensions are columns+2 by rows+2.
func NewGrid(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, columns, rows)
	}
	w, h := columns+2, rows+2
	return &Grid{
		columns: w,
		rows:    h,
		tiles:   make([]TileID, w*h),
	}, nil
}

// Columns returns the stored width, border included.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the stored height, border included.
func (g *Grid) Rows() int {
	return g.rows
}

// index converts a cell to a flat array index.
func (g *Grid) index(c Cell) int {
	return c.Row*g.columns + c.Column
}

// InBounds returns true if the cell lies on the stored grid, border included.
func (g *Grid) InBounds(c Cell) bool {
	return c.Column >= 0 && c.Column < g.columns && c.Row >= 0 && c.Row < g.rows
}

// IsBorder returns true for cells on the outer ring.
func (g *Grid) IsBorder(c Cell) bool {
	return c.Column == 0 || c.Column == g.columns-1 || c.Row == 0 || c.Row == g.rows-1
}

// Get returns the tile at the given cell.
// Returns NoTile for out-of-bounds cells.
func (g *Grid) Get(c Cell) TileID {
	if !g.InBounds(c) {
		return NoTile
	}
	return g.tiles[g.index(c)]
}

// IsFree returns true if the cell is in bounds and empty.
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && g.tiles[g.index(c)] == NoTile
}

// CheckFillable returns nil when a tile may be placed at c.
func (g *Grid) CheckFillable(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s is outside %dx%d", ErrInvalidCell, c, g.columns, g.rows)
	}
	if g.IsBorder(c) {
		return fmt.Errorf("%w: %s is at border", ErrBorderOrOccupied, c)
	}
	if t := g.tiles[g.index(c)]; t != NoTile {
		return fmt.Errorf("%w: %s occupied with %d", ErrBorderOrOccupied, c, t)
	}
	return nil
}

// Set places tile t at c.
func (g *Grid) Set(c Cell, t TileID) error {
	if t == NoTile {
		return ErrNoTile
	}
	if err := g.CheckFillable(c); err != nil {
		return err
	}
	g.tiles[g.index(c)] = t
	return nil
}

// Clear empties the cell. Out-of-bounds cells are ignored.
func (g *Grid) Clear(c Cell) {
	if g.InBounds(c) {
		g.tiles[g.index(c)] = NoTile
	}
}

// FillPairs places tiles two at a time onto cells, taking cells from the
// end of the slice. It stops once fewer than two cells remain.
func (g *Grid) FillPairs(cells []Cell, tiles []TileID) error {
	for _, t := range tiles {
		if len(cells) < 2 {
			break
		}
		for i := 0; i < 2; i++ {
			c := cells[len(cells)-1]
			cells = cells[:len(cells)-1]
			if err := g.Set(c, t); err != nil {
				return fmt.Errorf("board: cannot fill pair: %w", err)
			}
		}
	}
	return nil
}

// InteriorCells returns every non-border cell, ordered by row then column.
func (g *Grid) InteriorCells() []Cell {
	cells := make([]Cell, 0, (g.columns-2)*(g.rows-2))
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.columns-1; c++ {
			cells = append(cells, C(c, r))
		}
	}
	return cells
}

// EmptyInteriorCells returns the interior cells that hold no tile.
func (g *Grid) EmptyInteriorCells() []Cell {
	cells := make([]Cell, 0)
	for _, c := range g.InteriorCells() {
		if g.tiles[g.index(c)] == NoTile {
			cells = append(cells, c)
		}
	}
	return cells
}

// FilledCells returns the interior cells that hold a tile.
func (g *Grid) FilledCells() []Cell {
	cells := make([]Cell, 0)
	for _, c := range g.InteriorCells() {
		if g.tiles[g.index(c)] != NoTile {
			cells = append(cells, c)
		}
	}
	return cells
}

// TileCells groups filled cells by tile id, each group ordered by row then column.
func (g *Grid) TileCells() map[TileID][]Cell {
	groups := make(map[TileID][]Cell)
	for _, c := range g.FilledCells() {
		t := g.tiles[g.index(c)]
		groups[t] = append(groups[t], c)
	}
	return groups
}

// Row returns a copy of one stored row.
func (g *Grid) Row(r int) []TileID {
	track := make([]TileID, g.columns)
	copy(track, g.tiles[r*g.columns:(r+1)*g.columns])
	return track
}

// Column returns a copy of one stored column.
func (g *Grid) Column(c int) []TileID {
	track := make([]TileID, g.rows)
	for r := range track {
		track[r] = g.tiles[r*g.columns+c]
	}
	return track
}

// FilledCount returns the number of tiles on the grid.
func (g *Grid) FilledCount() int {
	count := 0
	for _, t := range g.tiles {
		if t != NoTile {
			count++
		}
	}
	return count
}

// IsCleared returns true if no tile is left.
func (g *Grid) IsCleared() bool {
	return g.FilledCount() == 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]TileID, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		columns: g.columns,
		rows:    g.rows,
		tiles:   tiles,
	}
}

// Equal returns true if both grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.columns != other.columns || g.rows != other.rows {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// TileRune returns the single-character form of a tile: '.' for empty,
// base-36 digits for ids below 36 and '?' above.
func TileRune(t TileID) rune {
	switch {
	case t == NoTile:
		return '.'
	case t < 10:
		return rune('0' + t)
	case t < 36:
		return rune('a' + t - 10)
	default:
		return '?'
	}
}

// String dumps the play area, one line per interior row.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 1; r < g.rows-1; r++ {
		if r > 1 {
			sb.WriteRune('\n')
		}
		for c := 1; c < g.columns-1; c++ {
			sb.WriteRune(TileRune(g.tiles[r*g.columns+c]))
		}
	}
	return sb.String()
}
