package internal

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip/internal/dbg"
)

// A vertex is one corner of a ring under triangulation. The ring links
// (prev, next) are circular; the z-order links (prevZ, nextZ) form a linear
// list sorted by Morton code. None of the links own anything: every vertex
// lives in the Triangulator's arena until the call ends.
type vertex struct {
	Point

	// Index into the output vertex list. Split copies share it.
	i int

	// Morton code, 0 until computed.
	z uint32

	prev, next   *vertex
	prevZ, nextZ *vertex
}

// Unlink the vertex from both its ring and the z-order list.
func (v *vertex) remove() {
	if v.next == nil || v.prev == nil {
		fatalf("removing vertex %s which is not in a ring", v)
	}
	if v.next.prev != v || v.prev.next != v {
		fatalf("ring links around %s are inconsistent", v)
	}

	v.next.prev = v.prev
	v.prev.next = v.next

	if v.prevZ != nil {
		v.prevZ.nextZ = v.nextZ
	}
	if v.nextZ != nil {
		v.nextZ.prevZ = v.prevZ
	}

	v.next = nil
	v.prev = nil
	v.nextZ = nil
	v.prevZ = nil
}

// ringLen counts the vertices reachable from v.
func (v *vertex) ringLen() int {
	if v.next == nil {
		return 0
	}
	n := 1
	for p := v.next; p != v; p = p.next {
		n++
	}
	return n
}

// Sort all vertices in v's ring by Morton code and relink the z-order list.
// Ties are broken by x, then y, then output index, so the order is total.
func zSort(v *vertex) {
	queue := []*vertex{v}
	for p := v.next; p != nil && p != v; p = p.next {
		queue = append(queue, p)
	}

	slices.SortFunc(queue, func(a, b *vertex) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.i, b.i)
	})

	var prev *vertex
	for _, elem := range queue {
		if prev != nil {
			prev.nextZ = elem
		}
		elem.prevZ = prev
		prev = elem
	}
	prev.nextZ = nil
}

// Vertices are fixed in place once allocated: the arena only ever adds new
// chunks, it never grows an existing one past its capacity. This keeps every
// link valid while a split appends vertices mid-triangulation.
const arenaChunkSize = 256

type arena struct {
	chunks [][]vertex
	count  int
}

func (a *arena) alloc(i int, p Point) *vertex {
	if len(a.chunks) == 0 || len(a.chunks[len(a.chunks)-1]) == arenaChunkSize {
		a.chunks = append(a.chunks, make([]vertex, 0, arenaChunkSize))
	}
	chunk := &a.chunks[len(a.chunks)-1]
	*chunk = append(*chunk, vertex{Point: p, i: i})
	a.count++
	return &(*chunk)[len(*chunk)-1]
}

func (a *arena) len() int {
	return a.count
}

// Drop every vertex. Nothing allocated before a reset may be used after it.
func (a *arena) reset() {
	a.chunks = nil
	a.count = 0
}

func (v *vertex) String() string {
	if v == nil {
		return "Ø"
	}
	name := fmt.Sprintf("%s#%d(%d,%d)", dbg.Name(v), v.i, v.X, v.Y)
	if v.prev == nil || v.next == nil {
		return aurora.Blue(name).String()
	}
	switch a := area(v.prev.Point, v.Point, v.next.Point); {
	case a < 0: // Convex
		return aurora.Green(name).String()
	case a > 0: // Reflex
		return aurora.Red(name).String()
	default: // Collinear
		return aurora.Yellow(name).String()
	}
}

// ringString lists the ring starting at v, for debugging.
func ringString(v *vertex) string {
	if v == nil || v.next == nil {
		return fmt.Sprintf("[%s]", v)
	}
	var parts []string
	p := v
	for {
		parts = append(parts, p.String())
		p = p.next
		if p == v {
			break
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
