package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAroundTopLeftPlacement(t *testing.T) {
	used := Rectangle{X: 0, Y: 0, W: 1000, H: 1000}
	placed := Rectangle{X: 0, Y: 0, W: 200, H: 150}

	residuals := SplitAround(used, placed)
	require.Len(t, residuals, 2)
	assert.Equal(t, Rectangle{X: 200, Y: 0, W: 800, H: 1000}, residuals[0])
	assert.Equal(t, Rectangle{X: 0, Y: 150, W: 200, H: 850}, residuals[1])
}

func TestSplitAroundExactFitYieldsNoResiduals(t *testing.T) {
	used := Rectangle{X: 0, Y: 0, W: 200, H: 150}
	placed := used
	assert.Empty(t, SplitAround(used, placed))
}

func TestSubtractPlacedKeepsNonOverlapping(t *testing.T) {
	frees := []FreeRect{{X: 500, Y: 500, W: 100, H: 100}}
	placed := Rectangle{X: 0, Y: 0, W: 50, H: 50}
	out := SubtractPlaced(frees, placed)
	require.Len(t, out, 1)
	assert.Equal(t, frees[0], out[0])
}

func TestSubtractPlacedSplitsOverlapping(t *testing.T) {
	frees := []FreeRect{{X: 0, Y: 0, W: 100, H: 100}}
	placed := Rectangle{X: 20, Y: 20, W: 30, H: 30}

	out := SubtractPlaced(frees, placed)
	require.Len(t, out, 4)
	for _, fr := range out {
		assert.False(t, Overlaps(fr, placed), "residual %+v must not overlap placement", fr)
	}
}

func TestMergeColinearHorizontal(t *testing.T) {
	frees := []FreeRect{
		{X: 0, Y: 0, W: 50, H: 100},
		{X: 50, Y: 0, W: 50, H: 100},
	}
	merged := MergeColinear(frees)
	require.Len(t, merged, 1)
	assert.Equal(t, Rectangle{X: 0, Y: 0, W: 100, H: 100}, merged[0])
}

func TestMergeColinearVertical(t *testing.T) {
	frees := []FreeRect{
		{X: 0, Y: 0, W: 100, H: 50},
		{X: 0, Y: 50, W: 100, H: 50},
	}
	merged := MergeColinear(frees)
	require.Len(t, merged, 1)
	assert.Equal(t, Rectangle{X: 0, Y: 0, W: 100, H: 100}, merged[0])
}

func TestMergeColinearDoesNotMergeUnrelated(t *testing.T) {
	frees := []FreeRect{
		{X: 0, Y: 0, W: 50, H: 50},
		{X: 500, Y: 500, W: 50, H: 50},
	}
	merged := MergeColinear(frees)
	assert.Len(t, merged, 2)
}

func TestFilterSmallDropsThinRects(t *testing.T) {
	frees := []FreeRect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 0, Y: 0, W: 50, H: 99},
	}
	out := FilterSmall(frees, 100)
	require.Len(t, out, 1)
	assert.Equal(t, frees[0], out[0])
}
