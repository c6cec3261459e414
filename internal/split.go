package internal

// splitPolygon is the last resort when no ear can be cut. It searches every
// pair of non-adjacent vertices, starting at start, for a diagonal that lies
// wholly inside the ring, then cuts the ring along it. Both halves have their
// duplicates removed and their z-order rebuilt before they are returned.
//
// Both results are nil when no diagonal qualifies.
func (t *Triangulator) splitPolygon(start *vertex) (*vertex, *vertex) {
	orig := start

	for {
		for marker := orig.next.next; marker != orig.prev; marker = marker.next {
			if orig.i != marker.i && goodSplit(orig, marker) {
				split := t.split(orig, marker)

				t.updateList(orig)
				t.updateList(split)

				return orig, split
			}
		}

		orig = orig.next
		if orig == start {
			return nil, nil
		}
	}
}

// split cuts a's ring along the diagonal a-b. Two fresh vertices copy a and
// b, keeping their output indices, so both rings refer to the same output
// vertices. The copy of b is returned; it sits in the ring that does not
// contain a.
func (t *Triangulator) split(a, b *vertex) *vertex {
	a2 := t.arena.alloc(a.i, a.Point)
	b2 := t.arena.alloc(b.i, b.Point)
	an := a.next
	bp := b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

// goodSplit reports whether the diagonal a-b can cut the ring. It must not
// run along or cross an existing edge, it must leave both ends into the
// interior and its midpoint must be inside. It must also produce two halves
// with area, unless a and b are the touching point of a figure eight.
// Ends that tie in z-order with a coincident vertex are refused because the
// duplicate pass would remove one of them.
func goodSplit(a, b *vertex) bool {
	aOnEdge := (a.nextZ != nil && a.Point == a.nextZ.Point) || (a.prevZ != nil && a.Point == a.prevZ.Point)
	bOnEdge := (b.nextZ != nil && b.Point == b.nextZ.Point) || (b.prevZ != nil && b.Point == b.prevZ.Point)
	if aOnEdge || bOnEdge {
		return false
	}

	noIntersect := a.next.i != b.i && a.prev.i != b.i && !intersectsPolygon(a, b)
	localSplit := locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b)
	if !noIntersect || !localSplit {
		return false
	}

	sameDir := area(a.prev.Point, a.Point, b.prev.Point) != 0 || area(a.Point, b.prev.Point, b.Point) != 0
	hasLen := a.Point == b.Point &&
		area(a.prev.Point, a.Point, a.next.Point) > 0 &&
		area(b.prev.Point, b.Point, b.next.Point) > 0

	return sameDir || hasLen
}
