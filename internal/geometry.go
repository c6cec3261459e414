package internal

// Geometry predicates shared by the ear clipping core, the split search and
// the hole bridging. All of them are exact integer arithmetic except
// middleInside, which needs the midpoint of a diagonal.

// MaxCoordinate bounds the absolute value of input coordinates. Within it
// every coordinate difference is below 2^31, so the doubled area of the
// whole box, and the difference of any two such products, fits in an int64.
const MaxCoordinate = 1<<30 - 1

// Twice the signed area of the triangle p, q, r. The sign convention is
// inverted from the usual cross product: a left (counterclockwise) turn at q
// is negative, which makes convex vertices of a counterclockwise ring negative.
func area(p, q, r Point) int64 {
	return (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// If p, q, and r are collinear, overlapping reports whether q lies between p
// and r.
func overlapping(p, q, r Point) bool {
	return q.X <= max(p.X, r.X) &&
		q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) &&
		q.Y >= min(p.Y, r.Y)
}

// intersects reports whether segment p1-q1 touches segment p2-q2, end points
// included.
func intersects(p1, q1, p2, q2 Point) bool {
	sign1 := sign(area(p1, q1, p2))
	sign2 := sign(area(p1, q1, q2))
	sign3 := sign(area(p2, q2, p1))
	sign4 := sign(area(p2, q2, q1))

	if sign1 != sign2 && sign3 != sign4 {
		return true
	}

	return (sign1 == 0 && overlapping(p1, p2, q1)) ||
		(sign2 == 0 && overlapping(p1, q2, q1)) ||
		(sign3 == 0 && overlapping(p2, p1, q2)) ||
		(sign4 == 0 && overlapping(p2, q1, q2))
}

// inTriangle reports whether p lies inside or on the boundary of the
// triangle a, b, c given in ring order.
func (p Point) inTriangle(a, b, c Point) bool {
	return (c.X-p.X)*(a.Y-p.Y)-(a.X-p.X)*(c.Y-p.Y) >= 0 &&
		(a.X-p.X)*(b.Y-p.Y)-(b.X-p.X)*(a.Y-p.Y) >= 0 &&
		(b.X-p.X)*(c.Y-p.Y)-(c.X-p.X)*(b.Y-p.Y) >= 0
}

// sectorContains reports whether the direction a->b leaves a into the
// interior of a ring whose neighbors of a are prev and next. The interior is
// on the left of the ring direction.
func sectorContains(prev, a, next, b Point) bool {
	if area(prev, a, next) < 0 {
		return area(a, b, next) >= 0 && area(a, prev, b) >= 0
	}
	return area(a, b, prev) < 0 || area(a, next, b) < 0
}

// locallyInside reports whether the segment a->b is inside a's ring right
// next to a. Nothing is claimed about the rest of the segment.
func locallyInside(a, b *vertex) bool {
	return sectorContains(a.prev.Point, a.Point, a.next.Point, b.Point)
}

// middleInside runs an even-odd ray cast from the midpoint of a-b against
// every edge of a's ring.
func middleInside(a, b *vertex) bool {
	inside := false
	px := float64(a.X+b.X) / 2
	py := float64(a.Y+b.Y) / 2

	p := a
	for {
		n := p.next
		if (float64(p.Y) > py) != (float64(n.Y) > py) &&
			px < float64(n.X-p.X)*(py-float64(p.Y))/float64(n.Y-p.Y)+float64(p.X) {
			inside = !inside
		}
		p = n
		if p == a {
			break
		}
	}
	return inside
}

// intersectsPolygon reports whether the diagonal a-b crosses an edge of a's
// ring. Edges sharing an output index with either end are ignored so that
// split copies of a and b do not count as crossings.
func intersectsPolygon(a, b *vertex) bool {
	p := a.next
	for {
		if p.i != a.i && p.next.i != a.i &&
			p.i != b.i && p.next.i != b.i &&
			intersects(p.Point, p.next.Point, a.Point, b.Point) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

// ContainsPoint is the even-odd point in polygon test over a point slice.
// Points on the boundary give an unspecified answer.
func ContainsPoint(ring []Point, p Point) bool {
	return CrossingCount(ring, p)%2 == 1
}

// Crossing count helper for the even-odd rule
func CrossingCount(ring []Point, p Point) int {
	crossings := 0
	for i, a := range ring {
		b := ring[CircularIndex(i+1, len(ring))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Side of p relative to a->b, with the edge oriented upward.
		s := area(a, b, p)
		if b.Y < a.Y {
			s = -s
		}
		if s < 0 {
			crossings++
		}
	}
	return crossings
}
