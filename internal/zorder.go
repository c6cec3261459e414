package internal

// Morton code of a point inside the triangulator's bounding box. Coordinates
// are quantized to 15 bits each and interleaved, x in the even bits and y in
// the odd bits.
// http://www.graphics.stanford.edu/~seander/bithacks.html#InterleaveBMN
func zOrder(box BBox, p Point) uint32 {
	x := uint32(32767.0 * float64(p.X-box.MinX) / float64(box.Width()))
	y := uint32(32767.0 * float64(p.Y-box.MinY) / float64(box.Height()))

	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555

	y = (y | (y << 8)) & 0x00FF00FF
	y = (y | (y << 4)) & 0x0F0F0F0F
	y = (y | (y << 2)) & 0x33333333
	y = (y | (y << 1)) & 0x55555555

	return x | (y << 1)
}

func (t *Triangulator) updateOrder(v *vertex) {
	if v.z == 0 {
		v.z = zOrder(t.bbox, v.Point)
	}
}

// After inserting or splitting, updateList removes adjacent duplicate
// vertices from v's ring, fills in missing Morton codes and rebuilds the
// z-order list from scratch. v itself is never removed.
func (t *Triangulator) updateList(v *vertex) {
	p := v.next
	for p != v {
		if p.Point == p.next.Point {
			p = p.prev
			p.next.remove()

			if p == p.next {
				break
			}
		}

		t.updateOrder(p)
		p = p.next
	}

	t.updateOrder(v)
	zSort(v)
}
