package internal

// Coordinates are integer board units. Every product taken in the geometry
// predicates is a product of two coordinate differences, so int64 holds them
// exactly for coordinates within ±MaxCoordinate.
type Point struct {
	X int64
	Y int64
}

// A triangle is a triple of indices into TriangulatedPolygon.Vertices.
type Triangle struct {
	A, B, C int
}

// TriangulatedPolygon is the output buffer of a triangulation. Vertices are
// appended as the ring builder consumes input points, so their order follows
// the canonical (counterclockwise) winding and not necessarily the order the
// caller supplied.
type TriangulatedPolygon struct {
	Vertices  []Point
	Triangles []Triangle
}

func (tp *TriangulatedPolygon) AddVertex(p Point) int {
	tp.Vertices = append(tp.Vertices, p)
	return len(tp.Vertices) - 1
}

func (tp *TriangulatedPolygon) AddTriangle(a, b, c int) {
	n := len(tp.Vertices)
	if a < 0 || b < 0 || c < 0 || a >= n || b >= n || c >= n {
		fatalf("triangle (%d, %d, %d) references a vertex outside [0, %d)", a, b, c, n)
	}
	tp.Triangles = append(tp.Triangles, Triangle{a, b, c})
}

func (tp *TriangulatedPolygon) VertexCount() int {
	return len(tp.Vertices)
}

func (tp *TriangulatedPolygon) TriangleCount() int {
	return len(tp.Triangles)
}

// Clear empties the buffer but keeps its capacity for reuse.
func (tp *TriangulatedPolygon) Clear() {
	tp.Vertices = tp.Vertices[:0]
	tp.Triangles = tp.Triangles[:0]
}

// Triangle resolves the k-th triangle to its corner coordinates.
func (tp *TriangulatedPolygon) Triangle(k int) (Point, Point, Point) {
	t := tp.Triangles[k]
	return tp.Vertices[t.A], tp.Vertices[t.B], tp.Vertices[t.C]
}

// Area2 returns twice the area covered by all triangles. It is exact, so it
// can be compared directly against DoubledArea of the input ring.
func (tp *TriangulatedPolygon) Area2() int64 {
	var sum int64
	for k := range tp.Triangles {
		a, b, c := tp.Triangle(k)
		s := area(a, b, c)
		if s < 0 {
			s = -s
		}
		sum += s
	}
	return sum
}

// DoubledArea is the shoelace sum of a ring: positive for counterclockwise
// rings, negative for clockwise ones.
func DoubledArea(ring []Point) int64 {
	var sum int64
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Reverse returns a copy of the ring with the opposite winding.
func Reverse(ring []Point) []Point {
	out := make([]Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// BBox is an axis aligned bounding box over integer points.
type BBox struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

func BoundingBox(points []Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	box := BBox{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		box.MinX = min(box.MinX, p.X)
		box.MinY = min(box.MinY, p.Y)
		box.MaxX = max(box.MaxX, p.X)
		box.MaxY = max(box.MaxY, p.Y)
	}
	return box
}

func (b BBox) Width() int64 {
	return b.MaxX - b.MinX
}

func (b BBox) Height() int64 {
	return b.MaxY - b.MinY
}
