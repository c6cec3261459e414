package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle references three distinct, in range vertices.
// 2. No triangle has zero area.
// 3. Every corner of every triangle is a point of the input ring.
// 4. The sum of the areas of all triangles is equal to the area of the ring.
func AssertValidTriangulation(t *testing.T, ring []Point, result *TriangulatedPolygon) {
	t.Helper()

	ringPoints := make(map[Point]struct{})
	for _, p := range ring {
		ringPoints[p] = struct{}{}
	}

	for k, tri := range result.Triangles {
		n := result.VertexCount()
		require.True(t, tri.A >= 0 && tri.A < n && tri.B >= 0 && tri.B < n && tri.C >= 0 && tri.C < n,
			"triangle %d %v out of range", k, tri)
		require.True(t, tri.A != tri.B && tri.B != tri.C && tri.C != tri.A, "triangle %d %v repeats a vertex", k, tri)

		a, b, c := result.Triangle(k)
		require.NotZero(t, area(a, b, c), "triangle %d %v has zero area", k, tri)
		for _, p := range []Point{a, b, c} {
			_, ok := ringPoints[p]
			require.True(t, ok, "triangle %d corner %v is not an input point", k, p)
		}
	}

	expected := DoubledArea(ring)
	if expected < 0 {
		expected = -expected
	}
	require.Equal(t, expected, result.Area2(), "sum of the areas of all triangles must equal the area of the ring")
}

// Same as AssertValidTriangulation, and the triangle count must be N-2.
func AssertFullTriangulation(t *testing.T, ring []Point, result *TriangulatedPolygon) {
	t.Helper()
	AssertValidTriangulation(t, ring, result)
	require.Len(t, result.Triangles, len(ring)-2)
}

func triangulate(t *testing.T, ring []Point) (*TriangulatedPolygon, bool) {
	t.Helper()
	result := &TriangulatedPolygon{}
	ok := NewTriangulator(result).Tesselate(ring)
	return result, ok
}

// Coordinates of every triangle, so that results built from differently
// indexed input can be compared.
func triangleCorners(result *TriangulatedPolygon) [][3]Point {
	out := make([][3]Point, len(result.Triangles))
	for k := range result.Triangles {
		a, b, c := result.Triangle(k)
		out[k] = [3]Point{a, b, c}
	}
	return out
}
