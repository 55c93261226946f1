package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxCenter(t *testing.T) {
	b := BoundingBox{Corners: [4]Point{{10, 20}, {18, 20}, {18, 26}, {10, 26}}}
	x, y := b.Center()
	require.Equal(t, 14, x)
	require.Equal(t, 23, y)
}

func TestPointJSON(t *testing.T) {
	line := LineSegment{Start: Point{0, 5}, End: Point{99, 7}}
	data, err := json.Marshal(line.Points())
	require.NoError(t, err)
	require.JSONEq(t, `[[99,7],[0,5]]`, string(data))
}
