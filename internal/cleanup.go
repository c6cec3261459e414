package internal

// removeNullTriangles walks the ring once and removes every vertex that
// coincides with its successor or sits on a straight line between its
// neighbors. Those are Steiner points: they carry no area, but they can keep
// every remaining corner from qualifying as an ear.
//
// It is only worth calling once the ear search has stalled. The return value
// is the vertex to resume from, or nil if nothing was removed.
func (t *Triangulator) removeNullTriangles(start *vertex) *vertex {
	var resume *vertex
	p := start.next

	for p != start {
		if p.Point == p.next.Point || area(p.prev.Point, p.Point, p.next.Point) == 0 {
			p = p.prev
			p.next.remove()
			resume = start

			if p == p.next {
				break
			}
		}

		p = p.next
	}

	// The loop needed an end point that would not be removed, so the start
	// gets its own check here.
	if area(start.prev.Point, start.Point, start.next.Point) == 0 {
		resume = p.next
		p.remove()
	}

	return resume
}
