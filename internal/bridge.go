package internal

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// Hole bridging merges an outer ring and its holes into the single ring the
// triangulator consumes. Each hole is joined to the ring through a pair of
// coincident edges ("bridge"), which duplicates both bridge end points.
//
// Holes are merged in order of their leftmost vertex. For each one the
// leftmost vertex is joined to the closest vertex of the merged ring that it
// can see: the joining segment touches no edge other than those at its own
// ends, and it leaves both rings into the region between them.

var ErrNoBridge = errors.New("no bridge from hole to outer ring")

// BridgeHoles returns the outer ring in counterclockwise order with every
// hole spliced in clockwise. Consecutive duplicate points are dropped and
// holes with fewer than three points are ignored.
func BridgeHoles(outer []Point, holes ...[]Point) ([]Point, error) {
	merged := orient(dedupe(outer), true)
	if len(merged) < 3 {
		return nil, errors.Errorf("outer ring has %d distinct points", len(merged))
	}

	var pending [][]Point
	for _, hole := range holes {
		hole = dedupe(hole)
		if len(hole) < 3 {
			continue
		}
		pending = append(pending, orient(hole, false))
	}

	slices.SortStableFunc(pending, func(a, b []Point) int {
		la, lb := a[leftmost(a)], b[leftmost(b)]
		if c := cmp.Compare(la.X, lb.X); c != 0 {
			return c
		}
		return cmp.Compare(la.Y, lb.Y)
	})

	for n, hole := range pending {
		h := leftmost(hole)
		o, ok := findBridge(merged, hole, h, pending[n+1:])
		if !ok {
			return nil, errors.Wrapf(ErrNoBridge, "hole %d at (%d, %d)", n, hole[h].X, hole[h].Y)
		}
		merged = splice(merged, o, hole, h)
	}

	return merged, nil
}

// orient returns ring wound counterclockwise when ccw is set, clockwise
// otherwise.
func orient(ring []Point, ccw bool) []Point {
	// Same sum as the ring builder: positive for clockwise rings
	var sum float64
	for i, p1 := range ring {
		p2 := ring[CircularIndex(i+1, len(ring))]
		sum += float64(p2.X-p1.X) * float64(p2.Y+p1.Y)
	}
	if (sum > 0) == ccw {
		return Reverse(ring)
	}
	return ring
}

// dedupe copies ring without consecutive duplicates, closing point included.
func dedupe(ring []Point) []Point {
	out := make([]Point, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func leftmost(ring []Point) int {
	best := 0
	for i, p := range ring {
		if p.X < ring[best].X || (p.X == ring[best].X && p.Y < ring[best].Y) {
			best = i
		}
	}
	return best
}

// findBridge returns the index of the closest vertex of merged visible from
// hole[h].
func findBridge(merged, hole []Point, h int, rest [][]Point) (int, bool) {
	hp := hole[h]

	candidates := make([]int, len(merged))
	for i := range candidates {
		candidates[i] = i
	}
	dist := func(i int) float64 {
		dx := float64(merged[i].X - hp.X)
		dy := float64(merged[i].Y - hp.Y)
		return dx*dx + dy*dy
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		return cmp.Compare(dist(a), dist(b))
	})

	for _, o := range candidates {
		op := merged[o]
		if op == hp {
			return o, true
		}
		if !sectorContains(merged[CircularIndex(o-1, len(merged))], op, merged[CircularIndex(o+1, len(merged))], hp) {
			continue
		}
		if !sectorContains(hole[CircularIndex(h-1, len(hole))], hp, hole[CircularIndex(h+1, len(hole))], op) {
			continue
		}
		if crossesRing(merged, op, hp) || crossesRing(hole, hp, op) {
			continue
		}
		blocked := false
		for _, other := range rest {
			if crossesRing(other, op, hp) {
				blocked = true
				break
			}
		}
		if !blocked {
			return o, true
		}
	}
	return 0, false
}

// crossesRing reports whether segment a-b touches an edge of ring. Edges
// ending at a or b are skipped. They are compared by coordinates, not index,
// because earlier bridges leave two copies of each end point in the ring.
func crossesRing(ring []Point, a, b Point) bool {
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		if p == a || p == b || q == a || q == b {
			continue
		}
		if intersects(p, q, a, b) {
			return true
		}
	}
	return false
}

// splice inserts hole into merged after index o, starting and ending at h,
// then returns to a copy of merged[o].
func splice(merged []Point, o int, hole []Point, h int) []Point {
	out := make([]Point, 0, len(merged)+len(hole)+2)
	out = append(out, merged[:o+1]...)
	out = append(out, hole[h:]...)
	out = append(out, hole[:h+1]...)
	out = append(out, merged[o:]...)
	return out
}
