package board

import "fmt"

// MaxTurns is the most direction changes a connection may take.
const MaxTurns = 2

// NodeStatus is the exploration state of a track node.
type NodeStatus uint8

const (
	// Wild nodes have not been expanded yet.
	Wild NodeStatus = iota
	// Explored nodes have had their children generated.
	Explored
	// Goal marks the node sitting on the goal cell.
	Goal
)

func (s NodeStatus) String() string {
	switch s {
	case Wild:
		return "wild"
	case Explored:
		return "explored"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// SearchStatus is the outcome of a single Search step.
type SearchStatus uint8

const (
	SearchContinue SearchStatus = iota
	SearchFound
	SearchExhausted
)

func (s SearchStatus) String() string {
	switch s {
	case SearchContinue:
		return "continue"
	case SearchFound:
		return "found"
	case SearchExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Node is one cell in the search tree. Parent is an arena index, -1 for
// the root. Direction is the step taken from the parent and is meaningless
// on the root (HasDirection is false there).
type Node struct {
	Pos          Cell
	Parent       int
	Direction    Direction
	HasDirection bool
	Turns        int
	Status       NodeStatus
}

// Track is a greedy best-first search from start toward goal that never
// takes more than MaxTurns turns. Nodes live in an arena addressed by index.
type Track struct {
	start    Cell
	goal     Cell
	inBounds func(Cell) bool
	nodes    []Node
	visited  map[Cell]struct{}
	current  int
}

// NewTrack creates a search tree rooted at start.
func NewTrack(start, goal Cell, inBounds func(Cell) bool) *Track {
	return &Track{
		start:    start,
		goal:     goal,
		inBounds: inBounds,
		nodes:    []Node{{Pos: start, Parent: -1, Status: Wild}},
		visited:  map[Cell]struct{}{start: {}},
	}
}

// Found returns true once the cursor sits on the goal.
func (t *Track) Found() bool {
	return t.nodes[t.current].Status == Goal
}

// Nodes returns a copy of the arena.
func (t *Track) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Search expands the node under the cursor and moves the cursor.
// isFree decides which non-goal cells may be entered.
//
// The cursor jumps to a goal child when one is generated. Otherwise it moves
// to the wild node anywhere in the tree closest to the goal, the earliest
// node winning ties. Search panics if the cursor is not on a wild node.
func (t *Track) Search(isFree func(Cell) bool) SearchStatus {
	cur := t.nodes[t.current]
	if cur.Status != Wild {
		panic(fmt.Sprintf("board: track node %s re-explored while %s", cur.Pos, cur.Status))
	}

	goalIdx := -1
	for _, d := range Directions {
		if cur.HasDirection && d.IsOpposite(cur.Direction) {
			continue
		}
		pos := cur.Pos.Neighbor(d)
		if !t.inBounds(pos) {
			continue
		}
		if _, seen := t.visited[pos]; seen {
			continue
		}
		if pos != t.goal && !isFree(pos) {
			continue
		}
		turns := cur.Turns
		if cur.HasDirection && d != cur.Direction {
			turns++
		}
		if turns > MaxTurns {
			continue
		}
		status := Wild
		if pos == t.goal {
			status = Goal
		}
		idx := t.add(Node{
			Pos:          pos,
			Parent:       t.current,
			Direction:    d,
			HasDirection: true,
			Turns:        turns,
			Status:       status,
		})
		if status == Goal && goalIdx < 0 {
			goalIdx = idx
		}
	}
	t.nodes[t.current].Status = Explored

	if goalIdx >= 0 {
		t.current = goalIdx
		return SearchFound
	}

	next, bestDist := -1, 0
	for i, n := range t.nodes {
		if n.Status != Wild {
			continue
		}
		dist := n.Pos.DistanceSqr(t.goal)
		if next < 0 || dist < bestDist {
			next, bestDist = i, dist
		}
	}
	if next < 0 {
		return SearchExhausted
	}
	t.current = next
	return SearchContinue
}

func (t *Track) add(n Node) int {
	if n.Turns > MaxTurns {
		panic(fmt.Sprintf("board: track node %s has %d turns", n.Pos, n.Turns))
	}
	t.nodes = append(t.nodes, n)
	t.visited[n.Pos] = struct{}{}
	return len(t.nodes) - 1
}

// Backtrace returns the cells from start to the cursor, root first.
// It is only meaningful after Search reported SearchFound.
func (t *Track) Backtrace() []Cell {
	var rev []Cell
	for i := t.current; i >= 0; i = t.nodes[i].Parent {
		rev = append(rev, t.nodes[i].Pos)
	}
	path := make([]Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// Corners reduces a cell-by-cell path to its endpoints and turning cells.
func Corners(path []Cell) []Cell {
	if len(path) <= 2 {
		return append([]Cell(nil), path...)
	}
	out := []Cell{path[0]}
	prev, _ := path[0].DirectionTo(path[1])
	for i := 1; i < len(path)-1; i++ {
		d, _ := path[i].DirectionTo(path[i+1])
		if d != prev {
			out = append(out, path[i])
			prev = d
		}
	}
	return append(out, path[len(path)-1])
}

// ConnectTrack joins a and b with the search track instead of the ray
// strategies. The path is returned as corner waypoints.
func (g *Grid) ConnectTrack(a, b Cell) ([]Cell, error) {
	if err := g.checkEndpoints(a, b); err != nil {
		return nil, err
	}
	t := NewTrack(a, b, g.InBounds)
	status := SearchContinue
	for status == SearchContinue {
		status = t.Search(g.IsFree)
	}
	if status == SearchExhausted {
		first, second := g.Cast(a), g.Cast(b)
		probes := append(append(make([]Path, 0, 8), first[:]...), second[:]...)
		logger.Debug("track exhausted", "from", a, "to", b, "nodes", len(t.nodes))
		return nil, &ConnectError{Tag: "track exhausted", From: a, To: b, Probes: probes}
	}
	path := Corners(t.Backtrace())
	logger.Debug("connect", "strategy", StrategyTrack, "from", a, "to", b, "nodes", len(t.nodes))
	return path, nil
}
