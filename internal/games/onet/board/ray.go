package board

import "fmt"

// Path is one ray cast from an origin: the number of consecutive empty,
// in-bounds cells met when walking from one step away in Direction.
type Path struct {
	Origin    Cell
	Direction Direction
	FreeCells int
}

// RaySet holds the four rays cast from one origin, indexed in Directions order.
type RaySet [4]Path

// Cast measures the free run in every direction from origin.
func (g *Grid) Cast(origin Cell) RaySet {
	var rays RaySet
	for i, d := range Directions {
		free := 0
		cur := origin.Neighbor(d)
		for g.IsFree(cur) {
			free++
			cur = cur.Neighbor(d)
		}
		rays[i] = Path{Origin: origin, Direction: d, FreeCells: free}
	}
	return rays
}

// Steps returns the free cells of the ray in walking order.
func (p Path) Steps() []Cell {
	return p.Origin.Walk(p.Direction, p.FreeCells)
}

// End returns the first cell past the free run: an occupied cell or one
// just outside the grid.
func (p Path) End() Cell {
	dc, dr := p.Direction.Delta()
	n := p.FreeCells + 1
	return Cell{Column: p.Origin.Column + dc*n, Row: p.Origin.Row + dr*n}
}

// Reaches reports whether c is one of the ray's free cells.
func (p Path) Reaches(c Cell) bool {
	d, ok := p.Origin.DirectionTo(c)
	if !ok || d != p.Direction {
		return false
	}
	dist := c.Column - p.Origin.Column + c.Row - p.Origin.Row
	if dist < 0 {
		dist = -dist
	}
	return dist <= p.FreeCells
}

// Span returns the inclusive range of rows (vertical rays) or columns
// (horizontal rays) swept by the free run. ok is false for an empty run.
func (p Path) Span() (lo, hi int, ok bool) {
	if p.FreeCells == 0 {
		return 0, 0, false
	}
	switch p.Direction {
	case Up:
		return p.Origin.Row - p.FreeCells, p.Origin.Row - 1, true
	case Down:
		return p.Origin.Row + 1, p.Origin.Row + p.FreeCells, true
	case Left:
		return p.Origin.Column - p.FreeCells, p.Origin.Column - 1, true
	default:
		return p.Origin.Column + 1, p.Origin.Column + p.FreeCells, true
	}
}

// spans reports whether index i lies in the ray's swept range.
func (p Path) spans(i int) bool {
	lo, hi, ok := p.Span()
	return ok && i >= lo && i <= hi
}

func (p Path) String() string {
	return fmt.Sprintf("%s %s x%d", p.Origin, p.Direction, p.FreeCells)
}
