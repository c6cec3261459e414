package internal

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const drawPadding = 20

// DrawPNG renders the triangulation as a PNG with filled triangles and the
// outline highlighted. scale is pixels per coordinate unit.
func (tp *TriangulatedPolygon) DrawPNG(w io.Writer, scale float64) error {
	return tp.newContext(scale).EncodePNG(w)
}

// Preview draws the triangulation and prints it in the terminal (iTerm only).
// Meant for debugging.
func (tp *TriangulatedPolygon) Preview(scale float64) error {
	path := filepath.Join(os.TempDir(), "triangulation.png")
	if err := tp.newContext(scale).SavePNG(path); err != nil {
		return errors.Wrap(err, "saving preview")
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func (tp *TriangulatedPolygon) newContext(scale float64) *gg.Context {
	box := BoundingBox(tp.Vertices)

	// Set up the context
	width := int(math.Ceil(scale*float64(box.Width()))) + drawPadding*2
	height := int(math.Ceil(scale*float64(box.Height()))) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-float64(box.MinX), -float64(box.MinY))

	for k := range tp.Triangles {
		a, b, cc := tp.Triangle(k)
		c.MoveTo(float64(a.X), float64(a.Y))
		c.LineTo(float64(b.X), float64(b.Y))
		c.LineTo(float64(cc.X), float64(cc.Y))
		c.ClosePath()
	}
	c.SetRGBA(0, 0.5, 0, 0.8)
	c.FillPreserve()
	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetLineWidth(3)
	c.SetRGB(1, 1, 0)
	for _, e := range tp.boundaryEdges() {
		a, b := tp.Vertices[e[0]], tp.Vertices[e[1]]
		c.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	}
	c.Stroke()

	return c
}

// boundaryEdges returns the triangle edges that no other triangle shares,
// compared by coordinates so split copies of a vertex count as one.
func (tp *TriangulatedPolygon) boundaryEdges() [][2]int {
	type edgeKey struct{ a, b Point }
	key := func(a, b int) edgeKey {
		pa, pb := tp.Vertices[a], tp.Vertices[b]
		if pb.X < pa.X || (pb.X == pa.X && pb.Y < pa.Y) {
			pa, pb = pb, pa
		}
		return edgeKey{pa, pb}
	}

	counts := make(map[edgeKey]int)
	var edges [][2]int
	for _, t := range tp.Triangles {
		for _, e := range [][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			k := key(e[0], e[1])
			if counts[k] == 0 {
				edges = append(edges, e)
			}
			counts[k]++
		}
	}

	var boundary [][2]int
	for _, e := range edges {
		if counts[key(e[0], e[1])] == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}
