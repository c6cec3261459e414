package earclip

import (
	"cmp"
	"math"
	"slices"

	clipper "github.com/ctessum/go.clipper"
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

var ErrOrphanHole = errors.New("hole is not inside any outer path")

// FromClipperPath converts a clipper path to a ring.
func FromClipperPath(path clipper.Path) []Point {
	ring := make([]Point, len(path))
	for i, p := range path {
		ring[i] = Point{X: int64(p.X), Y: int64(p.Y)}
	}
	return ring
}

// TriangulatePaths triangulates the output of a clipper operation. Paths with
// positive orientation are outer boundaries and the others are holes; each
// hole belongs to the smallest outer that contains it. One result is
// returned per outer path, in input order.
func TriangulatePaths(paths clipper.Paths) ([]*TriangulatedPolygon, error) {
	type outer struct {
		ring  []Point
		area  float64
		holes [][]Point
	}

	var outers []*outer
	var holes [][]Point
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		if clipper.Orientation(path) {
			outers = append(outers, &outer{ring: FromClipperPath(path), area: math.Abs(clipper.Area(path))})
		} else {
			holes = append(holes, FromClipperPath(path))
		}
	}

	bySize := slices.Clone(outers)
	slices.SortStableFunc(bySize, func(a, b *outer) int {
		return cmp.Compare(a.area, b.area)
	})

	for n, hole := range holes {
		var owner *outer
	search:
		for _, o := range bySize {
			for _, p := range hole {
				if advanced.ContainsPoint(o.ring, p) {
					owner = o
					break search
				}
			}
		}
		if owner == nil {
			return nil, errors.Wrapf(ErrOrphanHole, "hole %d", n)
		}
		owner.holes = append(owner.holes, hole)
	}

	results := make([]*TriangulatedPolygon, 0, len(outers))
	for n, o := range outers {
		result, err := Triangulate(o.ring, o.holes...)
		if err != nil {
			return nil, errors.Wrapf(err, "outer path %d", n)
		}
		results = append(results, result)
	}
	return results, nil
}
