package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	g := newTestGrid(t, 6, 3, map[Cell]TileID{C(1, 1): 1, C(4, 1): 1})

	rays := g.Cast(C(1, 1))
	assert.Equal(t, Path{Origin: C(1, 1), Direction: Up, FreeCells: 1}, rays[0])
	assert.Equal(t, Path{Origin: C(1, 1), Direction: Down, FreeCells: 3}, rays[1])
	assert.Equal(t, Path{Origin: C(1, 1), Direction: Left, FreeCells: 1}, rays[2])
	assert.Equal(t, Path{Origin: C(1, 1), Direction: Right, FreeCells: 2}, rays[3])

	assert.Equal(t, C(4, 1), rays[3].End())
	assert.Equal(t, []Cell{C(2, 1), C(3, 1)}, rays[3].Steps())
	assert.True(t, rays[3].Reaches(C(3, 1)))
	assert.False(t, rays[3].Reaches(C(4, 1)))
	assert.False(t, rays[1].Reaches(C(3, 1)))

	lo, hi, ok := rays[1].Span()
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 4, hi)
	lo, hi, ok = rays[0].Span()
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{lo, hi})
}

func TestCastFromEveryInteriorCellTerminates(t *testing.T) {
	g := newTestGrid(t, 5, 4, map[Cell]TileID{C(2, 2): 3})
	for _, c := range g.InteriorCells() {
		for _, p := range g.Cast(c) {
			end := p.End()
			assert.False(t, g.IsFree(end), "ray %s ends on free cell %s", p, end)
			for _, s := range p.Steps() {
				assert.True(t, g.IsFree(s), "ray %s crosses %s", p, s)
			}
		}
	}
}

func TestConnectOverlap(t *testing.T) {
	g := newTestGrid(t, 6, 3, map[Cell]TileID{C(1, 1): 1, C(4, 1): 1})

	path, err := g.Connect(C(1, 1), C(4, 1))
	require.NoError(t, err)
	assert.Equal(t, []Cell{C(1, 1), C(4, 1)}, path)

	path, err = g.Connect(C(4, 1), C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []Cell{C(4, 1), C(1, 1)}, path)
}

func TestConnectAdjacent(t *testing.T) {
	g := newTestGrid(t, 3, 3, map[Cell]TileID{C(2, 2): 1, C(2, 3): 1})

	path, err := g.Connect(C(2, 2), C(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []Cell{C(2, 2), C(2, 3)}, path)
}

func TestConnectCrossed(t *testing.T) {
	g := newTestGrid(t, 10, 10, map[Cell]TileID{C(4, 4): 10, C(6, 6): 10})

	path, err := g.Connect(C(4, 4), C(6, 6))
	require.NoError(t, err)
	assert.Equal(t, []Cell{C(4, 4), C(4, 6), C(6, 6)}, path)

	a, b := g.Cast(C(4, 4)), g.Cast(C(6, 6))
	assert.True(t, a[1].Reaches(path[1]))
	assert.True(t, b[2].Reaches(path[1]))
}

func TestConnectBridge(t *testing.T) {
	// 1 2 1 in a single row: both ways round pass over the middle tile.
	g := newTestGrid(t, 3, 1, map[Cell]TileID{C(1, 1): 1, C(2, 1): 2, C(3, 1): 1})

	path, err := g.Connect(C(1, 1), C(3, 1))
	require.NoError(t, err)
	// Above and below score the same; the first pair in Up, Down order wins.
	assert.Equal(t, []Cell{C(1, 1), C(1, 0), C(3, 0), C(3, 1)}, path)
	assertPathClear(t, g, path)
}

func TestConnectBridgePrefersShortest(t *testing.T) {
	// The route over the top is found first but runs along the border;
	// the one underneath is shorter.
	g := newTestGrid(t, 5, 5, map[Cell]TileID{
		C(2, 1): 9, C(3, 1): 9, C(4, 1): 9,
		C(2, 2): 9, C(3, 2): 9, C(4, 2): 9,
		C(1, 3): 1, C(2, 3): 9, C(3, 3): 9, C(4, 3): 9, C(5, 3): 1,
	})

	path, err := g.Connect(C(1, 3), C(5, 3))
	require.NoError(t, err)
	assert.Equal(t, []Cell{C(1, 3), C(1, 4), C(5, 4), C(5, 3)}, path)
	assertPathClear(t, g, path)
}

func TestConnectFailure(t *testing.T) {
	walls := map[Cell]TileID{
		C(2, 2): 1, C(2, 1): 5, C(1, 2): 5, C(3, 2): 5, C(2, 3): 5,
		C(1, 1): 1,
	}
	g := newTestGrid(t, 3, 3, walls)

	path, err := g.Connect(C(1, 1), C(2, 2))
	assert.Nil(t, path)
	require.ErrorIs(t, err, ErrNoConnection)

	var ce *ConnectError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, C(1, 1), ce.From)
	assert.Equal(t, C(2, 2), ce.To)
	require.Len(t, ce.Probes, 8)
	for i, p := range ce.Probes[:4] {
		assert.Equal(t, C(1, 1), p.Origin)
		assert.Equal(t, Directions[i], p.Direction)
	}
	for _, p := range ce.Probes[4:] {
		assert.Equal(t, C(2, 2), p.Origin)
		assert.Zero(t, p.FreeCells)
	}
}

func TestConnectPreconditions(t *testing.T) {
	g := newTestGrid(t, 3, 3, map[Cell]TileID{C(1, 1): 1})

	_, err := g.Connect(C(1, 1), C(1, 1))
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = g.Connect(C(1, 1), C(0, 1))
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = g.Connect(C(1, 1), C(7, 7))
	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestConnectNeverCrossesTiles(t *testing.T) {
	g := newTestGrid(t, 6, 5, map[Cell]TileID{
		C(1, 1): 1, C(6, 5): 1,
		C(3, 1): 2, C(3, 2): 2, C(3, 3): 3, C(4, 4): 3,
		C(2, 5): 4, C(5, 2): 4,
	})

	cells := g.FilledCells()
	for i, a := range cells {
		for _, b := range cells[i+1:] {
			path, err := g.Connect(a, b)
			if err != nil {
				assert.ErrorIs(t, err, ErrNoConnection)
				continue
			}
			assert.LessOrEqual(t, len(path), 4)
			assert.Equal(t, a, path[0])
			assert.Equal(t, b, path[len(path)-1])
			assertPathClear(t, g, path)
		}
	}
}

// assertPathClear checks that every cell on the polyline, endpoints
// excluded, is in bounds and empty, and that every segment is straight.
func assertPathClear(t *testing.T, g *Grid, path []Cell) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		d, ok := from.DirectionTo(to)
		require.True(t, ok, "segment %s-%s is not straight", from, to)
		for cur := from.Neighbor(d); cur != to; cur = cur.Neighbor(d) {
			assert.True(t, g.IsFree(cur), "segment %s-%s crosses %s", from, to, cur)
		}
		if i > 0 {
			assert.True(t, g.IsFree(from), "corner %s is occupied", from)
		}
	}
}
