// Package advanced exposes the triangulator for callers that own their result
// buffers, bridge holes themselves, or want the boolean status without the
// error wrapping of the top level package.
package advanced

import "github.com/osuushi/earclip/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type TriangulatedPolygon = internal.TriangulatedPolygon
type Triangulator = internal.Triangulator
type TriangulateError = internal.TriangulateError
type BBox = internal.BBox

const MaxCoordinate = internal.MaxCoordinate

var ErrNoBridge = internal.ErrNoBridge

// NewTriangulator binds a triangulator to result. Each Tesselate call clears
// result before writing to it.
func NewTriangulator(result *TriangulatedPolygon) *Triangulator {
	return internal.NewTriangulator(result)
}

// BridgeHoles merges holes into outer, producing one ring suitable for
// Triangulator.Tesselate.
func BridgeHoles(outer []Point, holes ...[]Point) ([]Point, error) {
	return internal.BridgeHoles(outer, holes...)
}

// Recover helper for callers of Tesselate. Call it with the result of
// recover() in a deferred function: it returns the TriangulateError of an
// internal invariant failure and re-panics anything else.
func HandleTriangulatePanicRecover(r interface{}) error {
	return internal.HandleTriangulatePanicRecover(r)
}

// DoubledArea is the signed shoelace sum of ring, positive when it winds
// counterclockwise.
func DoubledArea(ring []Point) int64 {
	return internal.DoubledArea(ring)
}

// ContainsPoint is an even-odd point in polygon test.
func ContainsPoint(ring []Point, p Point) bool {
	return internal.ContainsPoint(ring, p)
}
