package board

import "sort"

// Couple is a pair of track positions holding matching tiles, First < Second.
type Couple struct {
	First  int
	Second int
}

// Filter decides whether two tiles may be coupled.
type Filter func(a, b TileID) bool

// MatchSame accepts any two equal tiles.
func MatchSame(a, b TileID) bool {
	return a != NoTile && a == b
}

// MatchTile accepts only pairs of tile t.
func MatchTile(t TileID) Filter {
	return func(a, b TileID) bool {
		return a == t && b == t
	}
}

// MatchCondition scans the blends of one track left to right. Each run of
// unblocked positions sees the tiles on both sides of it; a pair of those
// traces is a couple when the filter accepts it. Two adjacent blocked
// positions are tested directly. Couples are returned ordered and unique.
func MatchCondition(blends []Blend, filter Filter) []Couple {
	seen := make(map[Couple]struct{})
	var couples []Couple
	emit := func(a, b Trace) {
		if a.Pos == b.Pos || !filter(a.Tile, b.Tile) {
			return
		}
		c := Couple{First: a.Pos, Second: b.Pos}
		if c.First > c.Second {
			c.First, c.Second = c.Second, c.First
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		couples = append(couples, c)
	}

	var run []Trace
	flush := func() {
		for i := 0; i < len(run); i++ {
			for j := i + 1; j < len(run); j++ {
				emit(run[i], run[j])
			}
		}
		run = run[:0]
	}

	for i, b := range blends {
		if b.Blocked {
			flush()
			if i > 0 && blends[i-1].Blocked {
				emit(Trace{Pos: i - 1, Tile: blends[i-1].Occupant}, Trace{Pos: i, Tile: b.Occupant})
			}
			continue
		}
		for _, t := range b.Traces() {
			if !containsTrace(run, t) {
				run = append(run, t)
			}
		}
	}
	flush()

	sort.Slice(couples, func(i, j int) bool {
		if couples[i].First != couples[j].First {
			return couples[i].First < couples[j].First
		}
		return couples[i].Second < couples[j].Second
	})
	return couples
}

func containsTrace(run []Trace, t Trace) bool {
	for _, r := range run {
		if r.Pos == t.Pos {
			return true
		}
	}
	return false
}

// StillHasMove reports whether two equal tiles face each other along an
// interior row or column with nothing in between. It only sees straight
// lines, so it can answer false while a turning connection exists.
func (g *Grid) StillHasMove() bool {
	for c := 1; c < g.columns-1; c++ {
		if len(MatchCondition(CastShadows(g.Column(c)), MatchSame)) > 0 {
			return true
		}
	}
	for r := 1; r < g.rows-1; r++ {
		if len(MatchCondition(CastShadows(g.Row(r)), MatchSame)) > 0 {
			return true
		}
	}
	return false
}

// Couples lists every straight-line pair StillHasMove would find, columns
// first, as grid cells.
func (g *Grid) Couples() [][2]Cell {
	var out [][2]Cell
	for c := 1; c < g.columns-1; c++ {
		for _, cp := range MatchCondition(CastShadows(g.Column(c)), MatchSame) {
			out = append(out, [2]Cell{C(c, cp.First), C(c, cp.Second)})
		}
	}
	for r := 1; r < g.rows-1; r++ {
		for _, cp := range MatchCondition(CastShadows(g.Row(r)), MatchSame) {
			out = append(out, [2]Cell{C(cp.First, r), C(cp.Second, r)})
		}
	}
	return out
}
