package board

import (
	"fmt"
	"math"
)

// Strategy names a connection rule. StrategyRay and StrategyTrack pick
// the algorithm; the other three name the ray rule that matched.
type Strategy string

const (
	StrategyRay     Strategy = "ray"
	StrategyOverlap Strategy = "overlap"
	StrategyCrossed Strategy = "crossed"
	StrategyBridge  Strategy = "bridge"
	StrategyTrack   Strategy = "track"
)

// Connect joins a and b with a polyline of at most two turns.
// The returned waypoints start at a and end at b:
//
//	[a, b]               straight line (overlap)
//	[a, corner, b]       one turn (crossed)
//	[a, start, stop, b]  two turns (bridge)
//
// Tile ids are not compared; callers check them first. A failed attempt
// returns a *ConnectError carrying the eight probed rays.
func (g *Grid) Connect(a, b Cell) ([]Cell, error) {
	if err := g.checkEndpoints(a, b); err != nil {
		return nil, err
	}

	first := g.Cast(a)
	second := g.Cast(b)

	if path, ok := overlap(first, second); ok {
		logger.Debug("connect", "strategy", StrategyOverlap, "from", a, "to", b)
		return path, nil
	}
	if path, ok := crossed(first, second); ok {
		logger.Debug("connect", "strategy", StrategyCrossed, "from", a, "to", b, "corner", path[1])
		return path, nil
	}
	if path, ok := bridge(first, second, g.IsFree); ok {
		logger.Debug("connect", "strategy", StrategyBridge, "from", a, "to", b, "start", path[1], "stop", path[2])
		return path, nil
	}

	probes := make([]Path, 0, 8)
	probes = append(probes, first[:]...)
	probes = append(probes, second[:]...)
	logger.Debug("connect failed", "from", a, "to", b)
	return nil, &ConnectError{Tag: "cannot connect", From: a, To: b, Probes: probes}
}

// checkEndpoints validates the connect preconditions that do not involve tiles.
func (g *Grid) checkEndpoints(a, b Cell) error {
	if a == b {
		return fmt.Errorf("%w: %s selected twice", ErrInvalidCell, a)
	}
	for _, c := range [2]Cell{a, b} {
		if !g.InBounds(c) || g.IsBorder(c) {
			return fmt.Errorf("%w: %s is not an interior cell", ErrInvalidCell, c)
		}
	}
	return nil
}

// overlap finds a ray from a whose blocking cell is b itself.
func overlap(first, second RaySet) ([]Cell, bool) {
	b := second[0].Origin
	for _, p := range first {
		if p.End() == b {
			return []Cell{p.Origin, b}, true
		}
	}
	return nil, false
}

// crossed finds a single corner reachable by a vertical ray from one
// origin and a horizontal ray from the other.
func crossed(first, second RaySet) ([]Cell, bool) {
	for _, p := range first {
		for _, q := range second {
			var corner Cell
			switch {
			case p.Direction.Axis() == Vertical && q.Direction.Axis() == Horizontal:
				corner = C(p.Origin.Column, q.Origin.Row)
			case p.Direction.Axis() == Horizontal && q.Direction.Axis() == Vertical:
				corner = C(q.Origin.Column, p.Origin.Row)
			default:
				continue
			}
			if p.Reaches(corner) && q.Reaches(corner) {
				return []Cell{p.Origin, corner, q.Origin}, true
			}
		}
	}
	return nil, false
}

// bridge joins two parallel rays with a perpendicular segment. Every
// accepted (start, stop) pair is scored by the truncated length of the
// three-segment polyline; the first lowest score wins.
func bridge(first, second RaySet, isFree func(Cell) bool) ([]Cell, bool) {
	var (
		best      []Cell
		bestScore int
	)
	for _, p := range first {
		for _, q := range second {
			if p.Direction.Axis() != q.Direction.Axis() {
				continue
			}
			for _, start := range p.Steps() {
				stop, ok := bridgeStop(p, q, start)
				if !ok || !clearBetween(start, stop, isFree) {
					continue
				}
				score := bridgeScore(p.Origin, start, stop, q.Origin)
				if best == nil || score < bestScore {
					best = []Cell{p.Origin, start, stop, q.Origin}
					bestScore = score
				}
			}
		}
	}
	return best, best != nil
}

// bridgeStop reflects start onto q's line. ok is false when start's
// row (or column) lies outside q's free run or the bridge has no length.
func bridgeStop(p, q Path, start Cell) (Cell, bool) {
	var stop Cell
	if p.Direction.Axis() == Vertical {
		if !q.spans(start.Row) {
			return Cell{}, false
		}
		stop = C(q.Origin.Column, start.Row)
	} else {
		if !q.spans(start.Column) {
			return Cell{}, false
		}
		stop = C(start.Column, q.Origin.Row)
	}
	return stop, stop != start
}

// clearBetween checks every cell strictly between from and to.
func clearBetween(from, to Cell, isFree func(Cell) bool) bool {
	d, ok := from.DirectionTo(to)
	if !ok {
		return false
	}
	for cur := from.Neighbor(d); cur != to; cur = cur.Neighbor(d) {
		if !isFree(cur) {
			return false
		}
	}
	return true
}

func bridgeScore(a, start, stop, b Cell) int {
	length := math.Sqrt(float64(a.DistanceSqr(start))) +
		math.Sqrt(float64(start.DistanceSqr(stop))) +
		math.Sqrt(float64(stop.DistanceSqr(b)))
	return int(length)
}
