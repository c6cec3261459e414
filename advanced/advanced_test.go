package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulatorReusesBuffer(t *testing.T) {
	result := &TriangulatedPolygon{}
	tr := NewTriangulator(result)

	outer := []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	hole := []Point{{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 70, Y: 70}, {X: 30, Y: 70}}
	ring, err := BridgeHoles(outer, hole)
	require.NoError(t, err)

	require.True(t, tr.Tesselate(ring))
	assert.Equal(t, 8, result.TriangleCount())
	assert.Equal(t, DoubledArea(ring), result.Area2())

	require.True(t, tr.Tesselate(outer))
	assert.Equal(t, 2, result.TriangleCount())
	assert.Equal(t, 4, result.VertexCount())
}

func TestContainsPoint(t *testing.T) {
	ring := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.True(t, ContainsPoint(ring, Point{X: 5, Y: 5}))
	assert.False(t, ContainsPoint(ring, Point{X: -5, Y: 5}))
}

func TestOutOfRange(t *testing.T) {
	result := &TriangulatedPolygon{}
	ok := NewTriangulator(result).Tesselate([]Point{{X: 0, Y: 0}, {X: MaxCoordinate * 2, Y: 0}, {X: 0, Y: 10}})
	assert.False(t, ok)
	assert.Zero(t, result.TriangleCount())
}
