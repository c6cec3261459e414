package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/earclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRings(t *testing.T) {
	input := `0 0
10 0
10 10
0 10

2 2
2 4
4 4
`
	rings, err := readRings(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rings, 2)
	assert.Equal(t, []earclip.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, rings[0])
	assert.Len(t, rings[1], 3)
}

func TestReadRings_BadLine(t *testing.T) {
	_, err := readRings(strings.NewReader("0 0\n1\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = readRings(strings.NewReader("0 zero\n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestWriteResult(t *testing.T) {
	result, err := earclip.Triangulate([]earclip.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
	require.NoError(t, err)

	var buf bytes.Buffer
	writeResult(&buf, result)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// One triangle, a blank separator and three vertices
	assert.Len(t, lines, 5)
	assert.Equal(t, "", lines[1])
}
