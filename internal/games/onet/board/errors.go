package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a grid was requested with a non-positive dimension.
	ErrInvalidSize = errors.New("board: grid must have at least one column and one row")
	// ErrInvalidCell indicates a cell outside the grid, or a border cell where
	// an interior one is required.
	ErrInvalidCell = errors.New("board: invalid cell")
	// ErrBorderOrOccupied is returned when filling a border or non-empty cell.
	ErrBorderOrOccupied = errors.New("board: cell is on the border or occupied")
	// ErrNoTile indicates an attempt to fill a cell with the empty sentinel.
	ErrNoTile = errors.New("board: tile id must be positive")
	// ErrNoConnection indicates no strategy could join two cells.
	ErrNoConnection = errors.New("board: no connection")
	// ErrMismatch indicates two selected cells hold different tiles.
	ErrMismatch = errors.New("board: selected tiles differ")
	// ErrIncomplete indicates fewer than two cells are selected.
	ErrIncomplete = errors.New("board: selection incomplete")
)

// ConnectError describes a failed connection attempt. Probes holds the
// four rays cast from each endpoint (first endpoint first) for debug overlay.
type ConnectError struct {
	Tag    string
	From   Cell
	To     Cell
	Probes []Path
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("board: %s between %s and %s", e.Tag, e.From, e.To)
}

// Unwrap lets errors.Is match ErrNoConnection.
func (e *ConnectError) Unwrap() error {
	return ErrNoConnection
}
