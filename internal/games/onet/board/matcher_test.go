package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastShadow(t *testing.T) {
	track := []TileID{0, 1, 0, 0, 2, 0}

	b := CastShadow(track, 2)
	assert.False(t, b.Blocked)
	require.NotNil(t, b.Back)
	require.NotNil(t, b.Forward)
	assert.Equal(t, Trace{Pos: 1, Tile: 1}, *b.Back)
	assert.Equal(t, Trace{Pos: 4, Tile: 2}, *b.Forward)

	b = CastShadow(track, 1)
	assert.True(t, b.Blocked)
	assert.Equal(t, TileID(1), b.Occupant)
	assert.Empty(t, b.Traces())

	b = CastShadow(track, 5)
	assert.Equal(t, []Trace{{Pos: 4, Tile: 2}}, b.Traces())

	assert.Panics(t, func() { CastShadow(track, 6) })
}

func TestMatchCondition(t *testing.T) {
	tests := []struct {
		name     string
		track    []TileID
		filter   Filter
		expected []Couple
	}{
		{"gap", []TileID{0, 1, 0, 0, 1, 0}, MatchSame, []Couple{{1, 4}}},
		{"adjacent", []TileID{0, 3, 3, 0}, MatchSame, []Couple{{1, 2}}},
		{"different", []TileID{0, 1, 0, 2, 0}, MatchSame, nil},
		{"separated by other tile", []TileID{1, 2, 1}, MatchSame, nil},
		{"separated with gaps", []TileID{0, 1, 0, 2, 0, 1, 0}, MatchSame, nil},
		{"two couples", []TileID{0, 3, 0, 3, 0, 4, 0, 4}, MatchSame, []Couple{{1, 3}, {5, 7}}},
		{"single tile", []TileID{0, 3, 3, 0, 3, 0, 4, 4}, MatchTile(3), []Couple{{1, 2}, {2, 4}}},
		{"empty", []TileID{0, 0, 0}, MatchSame, nil},
		{"one free cell between", []TileID{1, 0, 1}, MatchSame, []Couple{{0, 2}}},
		{"touching at track ends", []TileID{1, 1}, MatchSame, []Couple{{0, 1}}},
		{"different across run", []TileID{1, 0, 0, 2}, MatchSame, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchCondition(CastShadows(tt.track), tt.filter))
		})
	}
}

func TestStillHasMoveStraightLine(t *testing.T) {
	g := newTestGrid(t, 6, 3, map[Cell]TileID{C(1, 1): 1, C(4, 1): 1})

	couples := MatchCondition(CastShadows(g.Row(1)), MatchSame)
	assert.Equal(t, []Couple{{1, 4}}, couples)
	assert.True(t, g.StillHasMove())
	assert.Equal(t, [][2]Cell{{C(1, 1), C(4, 1)}}, g.Couples())
}

func TestStillHasMoveColumn(t *testing.T) {
	g := newTestGrid(t, 3, 4, map[Cell]TileID{C(2, 1): 6, C(2, 4): 6, C(1, 1): 7, C(3, 4): 8})

	assert.True(t, g.StillHasMove())
	assert.Equal(t, [][2]Cell{{C(2, 1), C(2, 4)}}, g.Couples())
}

func TestStillHasMoveUnderApproximates(t *testing.T) {
	// The pair sits on a diagonal: connectable with one turn, but no
	// straight line joins it.
	g := newTestGrid(t, 3, 3, map[Cell]TileID{C(1, 1): 1, C(2, 2): 1})

	assert.False(t, g.StillHasMove())
	assert.Empty(t, g.Couples())

	path, err := g.Connect(C(1, 1), C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []Cell{C(1, 1), C(1, 2), C(2, 2)}, path)
}

func TestStillHasMoveBlocked(t *testing.T) {
	g := newTestGrid(t, 3, 1, map[Cell]TileID{C(1, 1): 1, C(2, 1): 2, C(3, 1): 1})
	assert.False(t, g.StillHasMove())

	g = newTestGrid(t, 3, 3, nil)
	assert.False(t, g.StillHasMove())
}

func TestStillHasMoveImpliesStraightConnection(t *testing.T) {
	g := newTestGrid(t, 6, 5, map[Cell]TileID{
		C(1, 1): 1, C(1, 4): 1, C(2, 2): 2, C(5, 2): 2,
		C(3, 3): 3, C(6, 5): 3, C(4, 1): 4, C(4, 2): 4,
	})

	require.True(t, g.StillHasMove())
	for _, cp := range g.Couples() {
		path, err := g.Connect(cp[0], cp[1])
		require.NoError(t, err, "couple %v", cp)
		assert.Equal(t, []Cell{cp[0], cp[1]}, path)
	}
}
