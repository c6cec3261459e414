// An ear clipping polygon triangulator for integer coordinates.
//
// This package converts a polygon outline, which may be non-convex, may touch
// itself, may cross itself slightly and may contain holes, into triangles
// that reference only the original points. It is built for outlines that come
// out of polygon clipping, such as copper fills on a circuit board.
package earclip

import (
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type TriangulatedPolygon = advanced.TriangulatedPolygon

var ErrNotTriangulatable = errors.New("polygon is not triangulatable")

// Triangulate converts an outer ring and optional holes into triangles.
//
// Rings may wind either way; holes are merged into the outer ring before
// triangulation. The triangle indices refer to result.Vertices, whose order
// may differ from the input. A polygon that cannot be triangulated returns an
// error wrapping ErrNotTriangulatable.
func Triangulate(outer []Point, holes ...[]Point) (result *TriangulatedPolygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	ring := outer
	if len(holes) > 0 {
		ring, err = advanced.BridgeHoles(outer, holes...)
		if err != nil {
			return nil, errors.Wrap(err, "bridging holes")
		}
	}

	result = &TriangulatedPolygon{}
	if !advanced.NewTriangulator(result).Tesselate(ring) {
		return nil, errors.Wrapf(ErrNotTriangulatable, "ring of %d points", len(ring))
	}
	return result, nil
}

// TriangulateRing triangulates a single ring that already has any holes
// bridged into it, reporting the plain success status. On failure the result
// holds whatever was emitted before the triangulator gave up.
func TriangulateRing(ring []Point) (result *TriangulatedPolygon, ok bool) {
	defer func() {
		if advanced.HandleTriangulatePanicRecover(recover()) != nil {
			ok = false
		}
	}()

	result = &TriangulatedPolygon{}
	ok = advanced.NewTriangulator(result).Tesselate(ring)
	return result, ok
}
