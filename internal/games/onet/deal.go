package onet

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
)

// MaxKinds is the largest tile id a board can show with one character.
const MaxKinds = 35

// maxDealAttempts bounds re-deals and reshuffles looking for a board
// with a move on it.
const maxDealAttempts = 64

// Move is a connectable pair together with its waypoints.
type Move struct {
	From, To  board.Cell
	Waypoints []board.Cell
}

// Deal fills every empty interior cell pairwise with tile ids 1..kinds,
// cycling through the kinds. An odd leftover cell stays empty.
func Deal(g *board.Grid, kinds int, rng *rand.Rand) error {
	kinds = clampKinds(kinds)
	cells := g.EmptyInteriorCells()
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	tiles := make([]board.TileID, len(cells)/2)
	for i := range tiles {
		tiles[i] = board.TileID(i%kinds + 1)
	}
	return g.FillPairs(cells, tiles)
}

// Shuffle redistributes the remaining tiles over the cells they occupy.
// The number of tiles of each kind is unchanged.
func Shuffle(g *board.Grid, rng *rand.Rand) {
	cells := g.FilledCells()
	tiles := make([]board.TileID, len(cells))
	for i, c := range cells {
		tiles[i] = g.Get(c)
		g.Clear(c)
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	for i, c := range cells {
		// Cells were just emptied and are interior, so Set cannot fail.
		_ = g.Set(c, tiles[i])
	}
}

// FindMove searches every same-tile pair for a connection. Kinds are
// tried in ascending order so the answer is deterministic.
func FindMove(g *board.Grid, strategy board.Strategy) (Move, bool) {
	groups := g.TileCells()
	kinds := make([]board.TileID, 0, len(groups))
	for t := range groups {
		kinds = append(kinds, t)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, t := range kinds {
		cells := groups[t]
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				var (
					path []board.Cell
					err  error
				)
				if strategy == board.StrategyTrack {
					path, err = g.ConnectTrack(cells[i], cells[j])
				} else {
					path, err = g.Connect(cells[i], cells[j])
				}
				if err == nil {
					return Move{From: cells[i], To: cells[j], Waypoints: path}, true
				}
			}
		}
	}
	return Move{}, false
}

// HasMove is the cheap straight-line check with FindMove as fallback.
func HasMove(g *board.Grid, strategy board.Strategy) bool {
	if g.IsCleared() || g.StillHasMove() {
		return true
	}
	_, ok := FindMove(g, strategy)
	return ok
}

// dealPlayable builds a columns x rows board and re-deals until some
// pair can be removed. The last attempt is returned either way.
func dealPlayable(columns, rows, kinds int, strategy board.Strategy, rng *rand.Rand) (*board.Grid, error) {
	var g *board.Grid
	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		var err error
		g, err = board.NewGrid(columns, rows)
		if err != nil {
			return nil, err
		}
		if err := Deal(g, kinds, rng); err != nil {
			return nil, err
		}
		if HasMove(g, strategy) {
			return g, nil
		}
	}
	return g, nil
}

// reshuffle shuffles until a move exists. It reports false if none
// turned up within the attempt limit.
func reshuffle(g *board.Grid, strategy board.Strategy, rng *rand.Rand) bool {
	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		Shuffle(g, rng)
		if HasMove(g, strategy) {
			return true
		}
	}
	return false
}

func clampKinds(kinds int) int {
	if kinds < 1 {
		return 1
	}
	if kinds > MaxKinds {
		return MaxKinds
	}
	return kinds
}
