package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/earclip"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation. Input on stdin should be newline separated integer
// points in the form "x y", with each ring separated by an extra newline. The
// first ring is the outline and any further rings are holes. Either winding
// is accepted.
//
// Output is one line per triangle listing its three vertex indices, followed
// by the vertex list the indices refer to.

var (
	pngPath = kingpin.Flag("png", "Write a rendering of the triangulation to this file.").String()
	scale   = kingpin.Flag("scale", "Pixels per coordinate unit in renderings.").Default("1").Float64()
	preview = kingpin.Flag("imgcat", "Print a rendering in the terminal (iTerm only).").Bool()
	quiet   = kingpin.Flag("quiet", "Only print the counts.").Short('q').Bool()
)

func main() {
	kingpin.Parse()
	log.SetFlags(0)
	log.SetPrefix("earclip: ")

	rings, err := readRings(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	if len(rings) == 0 {
		log.Fatal("no rings on stdin")
	}

	result, err := earclip.Triangulate(rings[0], rings[1:]...)
	if err != nil {
		log.Fatal(err)
	}

	if !*quiet {
		writeResult(os.Stdout, result)
	}
	fmt.Printf("%d vertices, %d triangles\n", result.VertexCount(), result.TriangleCount())

	if *pngPath != "" {
		if err := writePNG(*pngPath, result); err != nil {
			log.Fatal(err)
		}
	}
	if *preview {
		if err := result.Preview(*scale); err != nil {
			log.Fatal(err)
		}
	}
}

func readRings(in io.Reader) ([][]earclip.Point, error) {
	var rings [][]earclip.Point
	var points []earclip.Point

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if text == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings, nil
}

func parsePoint(text string) (earclip.Point, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return earclip.Point{}, errors.Errorf("expected \"x y\", got %q", text)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return earclip.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return earclip.Point{}, errors.Wrap(err, "y")
	}
	return earclip.Point{X: x, Y: y}, nil
}

func writeResult(w io.Writer, result *earclip.TriangulatedPolygon) {
	for _, t := range result.Triangles {
		fmt.Fprintf(w, "%d %d %d\n", t.A, t.B, t.C)
	}
	fmt.Fprintln(w)
	for i, p := range result.Vertices {
		fmt.Fprintf(w, "%d: %d %d\n", i, p.X, p.Y)
	}
}

func writePNG(path string, result *earclip.TriangulatedPolygon) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating png")
	}
	defer f.Close()
	return errors.Wrap(result.DrawPNG(f, *scale), "encoding png")
}
