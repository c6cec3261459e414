package internal

// Ear clipping over a circular doubly linked vertex list, with a Morton code
// index for the "is this an ear" search. When no ear is left the ring is
// first cleaned of zero area vertices, then split along a verified diagonal
// into two rings that are triangulated independently.
//
// Rings are CCW after construction. area() is negative at convex corners.

// A Triangulator writes into a caller owned result buffer. It holds no state
// between calls other than that binding, so it may be reused, but it must not
// be shared between goroutines.
type Triangulator struct {
	result *TriangulatedPolygon
	bbox   BBox
	arena  arena
}

func NewTriangulator(result *TriangulatedPolygon) *Triangulator {
	return &Triangulator{result: result}
}

func (t *Triangulator) Result() *TriangulatedPolygon {
	return t.result
}

// Tesselate clears the result buffer and triangulates one closed ring into
// it. The ring may wind either way. Holes must already be bridged into it.
//
// The return value is false when the ring cannot be triangulated. Degenerate
// input (fewer than three distinct points, a flat bounding box, coordinates
// beyond MaxCoordinate) fails without emitting any triangle; a ring that
// stalls fails with whatever triangles were emitted before the stall.
func (t *Triangulator) Tesselate(ring []Point) bool {
	t.bbox = BoundingBox(ring)
	t.result.Clear()
	defer t.arena.reset()

	if t.bbox.Width() == 0 || t.bbox.Height() == 0 {
		return false
	}
	if !inRange(t.bbox) || !hasThreeDistinct(ring) {
		return false
	}

	first := t.createList(ring)
	if first == nil || first.prev == first.next {
		return false
	}

	// Duplicate removal may leave fewer than three vertices
	t.updateList(first)
	if first.prev == first.next {
		return false
	}
	return t.earcut(first)
}

// hasThreeDistinct reports whether ring holds at least three different
// points, in any order.
func hasThreeDistinct(ring []Point) bool {
	if len(ring) < 3 {
		return false
	}
	a := ring[0]
	for i, b := range ring {
		if b == a {
			continue
		}
		for _, c := range ring[i+1:] {
			if c != a && c != b {
				return true
			}
		}
		return false
	}
	return false
}

func inRange(box BBox) bool {
	return box.MinX >= -MaxCoordinate && box.MinY >= -MaxCoordinate &&
		box.MaxX <= MaxCoordinate && box.MaxY <= MaxCoordinate
}

// createList links the ring into a circular list in counterclockwise order,
// adding each point to the output vertex list as it goes. A closing point
// equal to the first one is dropped.
func (t *Triangulator) createList(ring []Point) *vertex {
	var tail *vertex

	// Winding check. Accumulated in floating point since only the sign
	// matters and the exact sum could overflow on long rings.
	var sum float64
	for i, p1 := range ring {
		p2 := ring[CircularIndex(i+1, len(ring))]
		sum += float64(p2.X-p1.X) * float64(p2.Y+p1.Y)
	}

	if sum > 0 {
		for i := len(ring) - 1; i >= 0; i-- {
			tail = t.insertVertex(ring[i], tail)
		}
	} else {
		for _, p := range ring {
			tail = t.insertVertex(p, tail)
		}
	}

	if tail != nil && tail.Point == tail.next.Point {
		tail.next.remove()
	}

	return tail
}

// insertVertex allocates a vertex for p and links it after last. A nil last
// starts a new single vertex ring.
func (t *Triangulator) insertVertex(p Point, last *vertex) *vertex {
	v := t.arena.alloc(t.result.AddVertex(p), p)

	if last == nil {
		v.prev = v
		v.next = v
	} else {
		v.next = last.next
		v.prev = last
		last.next.prev = v
		last.next = v
	}
	return v
}

// earcut triangulates every ring reachable from start. Rings produced by a
// split are pushed on a work stack instead of recursing, so adversarial input
// cannot exhaust the goroutine stack. The overall result is true only if
// every ring succeeds; processing stops at the first failure.
func (t *Triangulator) earcut(start *vertex) bool {
	pending := []*vertex{start}
	for len(pending) > 0 {
		ring := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		ok, halves := t.earcutRing(ring)
		if !ok {
			return false
		}
		pending = append(pending, halves...)
	}
	return true
}

// earcutRing walks the ring from ear, clipping ears as it finds them. Where
// two consecutive edges cross (not allowed in a valid outline, but possible in
// edited files) it emits one triangle over the crossing and removes both
// inner vertices.
//
// When a split is needed, the two resulting rings are returned instead of
// being processed; the ring holding ear is last so it is popped first.
func (t *Triangulator) earcutRing(ear *vertex) (bool, []*vertex) {
	if ear == nil {
		return true, nil
	}

	stop := ear

	for ear.prev != ear.next {
		prev := ear.prev
		next := ear.next

		if t.isEar(ear) {
			t.result.AddTriangle(prev.i, ear.i, next.i)
			ear.remove()

			// Skip one vertex as the triangle accounts for the prev node
			ear = next.next
			stop = next.next

			continue
		}

		nextNext := next.next

		if prev.Point != nextNext.Point &&
			intersects(prev.Point, ear.Point, next.Point, nextNext.Point) &&
			locallyInside(prev, nextNext) &&
			locallyInside(nextNext, prev) {
			t.result.AddTriangle(prev.i, ear.i, nextNext.i)

			next.remove()
			ear.remove()

			ear = nextNext
			stop = nextNext

			continue
		}

		ear = next

		// A full loop without clipping anything.
		if ear == stop {
			// Three collinear points are what is left of a ring that touched
			// itself. They cover nothing, so the ring is done.
			if ear.next.next == ear.prev && area(ear.prev.Point, ear.Point, ear.next.Point) == 0 {
				return true, nil
			}

			// Steiner points first. If ear itself was one, both the start and
			// stop points move.
			if p := t.removeNullTriangles(ear); p != nil {
				ear = p
				stop = p
				continue
			}

			orig, split := t.splitPolygon(ear)
			if orig == nil {
				return false, nil
			}
			return true, []*vertex{split, orig}
		}
	}

	// At this point the ring should be fully tessellated.
	return ear.prev == ear.next, nil
}

// isEar reports whether ear is the apex of an ear. Candidate blockers are
// found by walking the z-order list in both directions but only as far as
// the Morton range of the triangle's bounding box.
func (t *Triangulator) isEar(ear *vertex) bool {
	a := ear.prev
	b := ear
	c := ear.next

	// Reflex or collinear apex
	if area(a.Point, b.Point, c.Point) >= 0 {
		return false
	}

	minZ := zOrder(t.bbox, Point{min(a.X, b.X, c.X), min(a.Y, b.Y, c.Y)})
	maxZ := zOrder(t.bbox, Point{max(a.X, b.X, c.X), max(a.Y, b.Y, c.Y)})

	blocks := func(p *vertex) bool {
		return p != a && p != c &&
			p.inTriangle(a.Point, b.Point, c.Point) &&
			area(p.prev.Point, p.Point, p.next.Point) >= 0
	}

	// Increasing z-order first
	for p := ear.nextZ; p != nil && p.z <= maxZ; p = p.nextZ {
		if blocks(p) {
			return false
		}
	}

	// Then decreasing
	for p := ear.prevZ; p != nil && p.z >= minZ; p = p.prevZ {
		if blocks(p) {
			return false
		}
	}

	return true
}
