package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackFindsGoal(t *testing.T) {
	g := newTestGrid(t, 3, 1, map[Cell]TileID{C(1, 1): 1, C(2, 1): 2, C(3, 1): 1})

	tr := NewTrack(C(1, 1), C(3, 1), g.InBounds)
	steps := 0
	status := SearchContinue
	for status == SearchContinue {
		status = tr.Search(g.IsFree)
		steps++
	}
	require.Equal(t, SearchFound, status)
	assert.True(t, tr.Found())
	assert.Equal(t, 4, steps)

	expected := []Cell{C(1, 1), C(1, 0), C(2, 0), C(3, 0), C(3, 1)}
	assert.Equal(t, expected, tr.Backtrace())
	assert.Equal(t, []Cell{C(1, 1), C(1, 0), C(3, 0), C(3, 1)}, Corners(tr.Backtrace()))
}

func TestTrackAdjacentGoal(t *testing.T) {
	g := newTestGrid(t, 3, 3, map[Cell]TileID{C(2, 2): 1, C(3, 2): 1})

	tr := NewTrack(C(2, 2), C(3, 2), g.InBounds)
	assert.Equal(t, SearchFound, tr.Search(g.IsFree))
	assert.Equal(t, []Cell{C(2, 2), C(3, 2)}, tr.Backtrace())
}

func TestTrackTurnsAreMonotonic(t *testing.T) {
	g := newTestGrid(t, 8, 6, map[Cell]TileID{
		C(1, 1): 1, C(8, 6): 1,
		C(3, 2): 2, C(3, 3): 2, C(3, 4): 2,
		C(6, 3): 3, C(6, 4): 3, C(6, 5): 3,
	})

	tr := NewTrack(C(1, 1), C(8, 6), g.InBounds)
	for tr.Search(g.IsFree) == SearchContinue {
	}

	seen := make(map[Cell]bool)
	for i, n := range tr.Nodes() {
		assert.False(t, seen[n.Pos], "cell %s appears twice", n.Pos)
		seen[n.Pos] = true
		assert.LessOrEqual(t, n.Turns, MaxTurns, "node %d", i)
		if n.Parent < 0 {
			assert.Zero(t, i)
			assert.False(t, n.HasDirection)
			continue
		}
		parent := tr.Nodes()[n.Parent]
		assert.GreaterOrEqual(t, n.Turns, parent.Turns, "node %d", i)
		assert.LessOrEqual(t, n.Turns-parent.Turns, 1, "node %d", i)
		assert.True(t, parent.Pos.IsNeighbor(n.Pos), "node %d", i)
		if parent.HasDirection {
			assert.False(t, n.Direction.IsOpposite(parent.Direction), "node %d reverses", i)
		}
	}
}

func TestTrackExhausted(t *testing.T) {
	g := newTestGrid(t, 3, 3, map[Cell]TileID{
		C(2, 2): 1, C(2, 1): 5, C(1, 2): 5, C(3, 2): 5, C(2, 3): 5,
		C(1, 1): 1,
	})

	tr := NewTrack(C(1, 1), C(2, 2), g.InBounds)
	status := SearchContinue
	for status == SearchContinue {
		status = tr.Search(g.IsFree)
	}
	assert.Equal(t, SearchExhausted, status)
	assert.False(t, tr.Found())
	for _, n := range tr.Nodes() {
		assert.NotEqual(t, Wild, n.Status)
	}
}

func TestTrackPanicsWhenReexplored(t *testing.T) {
	g := newTestGrid(t, 3, 3, map[Cell]TileID{C(2, 2): 1, C(3, 2): 1})

	tr := NewTrack(C(2, 2), C(3, 2), g.InBounds)
	require.Equal(t, SearchFound, tr.Search(g.IsFree))
	assert.Panics(t, func() { tr.Search(g.IsFree) })
}

func TestConnectTrack(t *testing.T) {
	g := newTestGrid(t, 10, 10, map[Cell]TileID{C(4, 4): 10, C(6, 6): 10})

	path, err := g.ConnectTrack(C(4, 4), C(6, 6))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(path), 4)
	assert.Equal(t, C(4, 4), path[0])
	assert.Equal(t, C(6, 6), path[len(path)-1])
	assertPathClear(t, g, path)
}

func TestConnectTrackFailure(t *testing.T) {
	g := newTestGrid(t, 3, 3, map[Cell]TileID{
		C(2, 2): 1, C(2, 1): 5, C(1, 2): 5, C(3, 2): 5, C(2, 3): 5,
		C(1, 1): 1,
	})

	_, err := g.ConnectTrack(C(1, 1), C(2, 2))
	require.ErrorIs(t, err, ErrNoConnection)
	var ce *ConnectError
	require.True(t, errors.As(err, &ce))
	require.Len(t, ce.Probes, 8)
	for i, p := range ce.Probes {
		origin := C(1, 1)
		if i >= 4 {
			origin = C(2, 2)
		}
		assert.Equal(t, origin, p.Origin, "ray %d", i)
		assert.Equal(t, Directions[i%4], p.Direction, "ray %d", i)
	}

	_, err = g.ConnectTrack(C(1, 1), C(1, 1))
	assert.ErrorIs(t, err, ErrInvalidCell)
}

// The track is greedy: cells claimed by a dead-end branch are never
// revisited, so it can miss connections the ray strategies find.
// Here the branch through (3,1) claims (3,0) first, which closes the
// two-turn route over the top border.
func TestConnectTrackGreedyMissesBridge(t *testing.T) {
	g := newTestGrid(t, 4, 1, map[Cell]TileID{C(1, 1): 1, C(2, 1): 2, C(4, 1): 1})

	path, err := g.Connect(C(4, 1), C(1, 1))
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, C(4, 1), path[0])
	assert.Equal(t, C(1, 1), path[3])

	_, err = g.ConnectTrack(C(4, 1), C(1, 1))
	require.ErrorIs(t, err, ErrNoConnection)
	var ce *ConnectError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "track exhausted", ce.Tag)
}

func TestCorners(t *testing.T) {
	tests := []struct {
		name     string
		path     []Cell
		expected []Cell
	}{
		{"single", []Cell{C(1, 1)}, []Cell{C(1, 1)}},
		{"straight", []Cell{C(1, 1), C(2, 1), C(3, 1)}, []Cell{C(1, 1), C(3, 1)}},
		{"one turn", []Cell{C(1, 1), C(2, 1), C(2, 2), C(2, 3)}, []Cell{C(1, 1), C(2, 1), C(2, 3)}},
		{"two turns", []Cell{C(1, 1), C(1, 0), C(2, 0), C(3, 0), C(3, 1)}, []Cell{C(1, 1), C(1, 0), C(3, 0), C(3, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Corners(tt.path))
		})
	}
}
