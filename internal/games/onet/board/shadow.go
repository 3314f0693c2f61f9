package board

// Trace is the nearest tile seen from a wall position along a track.
type Trace struct {
	Pos  int
	Tile TileID
}

// Blend is what one wall position sees along a one-dimensional track.
// An occupied wall is Blocked and records its Occupant instead of traces.
type Blend struct {
	Blocked  bool
	Occupant TileID
	Back     *Trace
	Forward  *Trace
}

// Traces returns the traces that exist, backward one first.
func (b Blend) Traces() []Trace {
	var out []Trace
	if b.Back != nil {
		out = append(out, *b.Back)
	}
	if b.Forward != nil {
		out = append(out, *b.Forward)
	}
	return out
}

// CastShadow builds the blend for track[wall]. It panics when wall is
// outside the track.
func CastShadow(track []TileID, wall int) Blend {
	if wall < 0 || wall >= len(track) {
		panic("board: wall position outside track")
	}
	if track[wall] != NoTile {
		return Blend{Blocked: true, Occupant: track[wall]}
	}
	var b Blend
	for i := wall - 1; i >= 0; i-- {
		if track[i] != NoTile {
			b.Back = &Trace{Pos: i, Tile: track[i]}
			break
		}
	}
	for i := wall + 1; i < len(track); i++ {
		if track[i] != NoTile {
			b.Forward = &Trace{Pos: i, Tile: track[i]}
			break
		}
	}
	return b
}

// CastShadows casts every wall position of the track.
func CastShadows(track []TileID) []Blend {
	blends := make([]Blend, len(track))
	for i := range track {
		blends[i] = CastShadow(track, i)
	}
	return blends
}
