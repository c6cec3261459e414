package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg pictures and outputs rings. This is not a full (or
// even correct) svg parser. It finds whatever the first polygon is and reads
// its integer points in the order they are written. If anything goes wrong,
// it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"comb", "gear", "letter-e", "pad", "spiral", "steiner"}

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseInt(coords[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseInt(coords[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

func Square(x, y, size int64) []Point {
	return []Point{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5000
	const innerRadius = 2000
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{
			X: int64(math.Round(radius * math.Cos(angle))),
			Y: int64(math.Round(radius * math.Sin(angle))),
		})
	}
	return points
}

// SquareWithHole is a 100 unit square with a 40 unit square hole, bridged
// by hand from the hole's corner (30, 30) to the outer corner (0, 0).
func SquareWithHole() []Point {
	return []Point{
		{0, 0},
		{30, 30}, {30, 70}, {70, 70}, {70, 30}, {30, 30},
		{0, 0},
		{100, 0}, {100, 100}, {0, 100},
	}
}

// Bowtie crosses itself in the middle.
func Bowtie() []Point {
	return []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}
}

// FigureEight is two squares touching at (10, 10), traced as one ring.
func FigureEight() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {20, 10}, {20, 20}, {10, 20}, {10, 10}, {0, 10}}
}

func rotate(ring []Point, k int) []Point {
	out := make([]Point, 0, len(ring))
	out = append(out, ring[k:]...)
	return append(out, ring[:k]...)
}
