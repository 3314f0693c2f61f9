package board

import (
	"fmt"
	"time"
)

const (
	selectSlots  = 2
	removalSlots = 3
)

// Remnant is a tile that was removed, kept so it can still be drawn
// while its removal animates.
type Remnant struct {
	Cell Cell
	Tile TileID
}

// Removal records one matched pair taken off the grid.
type Removal struct {
	Remnants  [2]Remnant
	Waypoints []Cell
	At        time.Duration
}

// Selector turns player selections into removals. It keeps the last two
// selected cells and the last three removals, older entries falling off.
type Selector struct {
	selected []Cell
	removals []Removal
}

// NewSelector creates an empty selector.
func NewSelector() *Selector {
	return &Selector{
		selected: make([]Cell, 0, selectSlots),
		removals: make([]Removal, 0, removalSlots),
	}
}

// Select adds c to the selection. Selecting the latest cell again
// clears the selection.
func (s *Selector) Select(c Cell) {
	if latest, ok := s.Latest(); ok && latest == c {
		s.Reset()
		return
	}
	if len(s.selected) == selectSlots {
		s.selected = append(s.selected[:0], s.selected[1:]...)
	}
	s.selected = append(s.selected, c)
}

// Alter replaces the latest selection with c, or selects c when nothing is selected.
func (s *Selector) Alter(c Cell) {
	if len(s.selected) == 0 {
		s.selected = append(s.selected, c)
		return
	}
	s.selected[len(s.selected)-1] = c
}

// Latest returns the most recently selected cell.
func (s *Selector) Latest() (Cell, bool) {
	if len(s.selected) == 0 {
		return Cell{}, false
	}
	return s.selected[len(s.selected)-1], true
}

// Selected returns the current selection, oldest first.
func (s *Selector) Selected() []Cell {
	return append([]Cell(nil), s.selected...)
}

// Reset clears the selection.
func (s *Selector) Reset() {
	s.selected = s.selected[:0]
}

// Removals returns the remembered removals, oldest first.
func (s *Selector) Removals() []Removal {
	return append([]Removal(nil), s.removals...)
}

// Resolve tries to remove the two selected cells from g.
//
// With fewer than two selections it returns ErrIncomplete and keeps the
// selection. Otherwise the selection is always cleared: different tiles
// give ErrMismatch, a failed connection gives the connector's error
// (a *ConnectError with the probed rays), and a success clears both cells
// and records the Removal stamped with at.
func (s *Selector) Resolve(g *Grid, strategy Strategy, at time.Duration) (Removal, error) {
	if len(s.selected) < selectSlots {
		return Removal{}, ErrIncomplete
	}
	a, b := s.selected[0], s.selected[1]
	defer s.Reset()

	ta, tb := g.Get(a), g.Get(b)
	if ta == NoTile || ta != tb {
		return Removal{}, fmt.Errorf("%w: %s holds %d, %s holds %d", ErrMismatch, a, ta, b, tb)
	}

	var (
		waypoints []Cell
		err       error
	)
	if strategy == StrategyTrack {
		waypoints, err = g.ConnectTrack(a, b)
	} else {
		waypoints, err = g.Connect(a, b)
	}
	if err != nil {
		return Removal{}, err
	}

	g.Clear(a)
	g.Clear(b)
	r := Removal{
		Remnants:  [2]Remnant{{Cell: a, Tile: ta}, {Cell: b, Tile: tb}},
		Waypoints: waypoints,
		At:        at,
	}
	if len(s.removals) == removalSlots {
		s.removals = append(s.removals[:0], s.removals[1:]...)
	}
	s.removals = append(s.removals, r)
	return r, nil
}
