package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseFreePicksLowestYThenX(t *testing.T) {
	frees := []FreeRect{
		{X: 0, Y: 50, W: 300, H: 300},
		{X: 0, Y: 0, W: 300, H: 300},
	}
	piece := Piece{PieceID: 0, TypeID: 0, W: 100, H: 100, RotationAllowed: false}

	idx, x, y, w, h, orientation, ok := ChooseFree(frees, piece)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, Original, orientation)
}

func TestChooseFreeTieBreaksOnLeftoverThenFirstEncounter(t *testing.T) {
	frees := []FreeRect{
		{X: 0, Y: 0, W: 100, H: 100}, // leftover 0 for a 100x100 piece
		{X: 0, Y: 0, W: 200, H: 200}, // leftover 30000
	}
	piece := Piece{W: 100, H: 100, RotationAllowed: false}

	idx, _, _, _, _, _, ok := ChooseFree(frees, piece)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestChooseFreeRotationWhenOnlyRotatedFits(t *testing.T) {
	// A 250x50 piece does not fit a 60x300 rect as given; only its rotated
	// 50x250 orientation does, so the chooser must return Rotated.
	frees := []FreeRect{
		{X: 0, Y: 0, W: 60, H: 300},
	}
	piece := Piece{W: 250, H: 50, RotationAllowed: true}

	idx, x, y, w, h, orientation, ok := ChooseFree(frees, piece)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 50, w)
	assert.Equal(t, 250, h)
	assert.Equal(t, Rotated, orientation)
}

func TestChooseFreeNoFit(t *testing.T) {
	frees := []FreeRect{{X: 0, Y: 0, W: 10, H: 10}}
	piece := Piece{W: 100, H: 100, RotationAllowed: false}
	_, _, _, _, _, _, ok := ChooseFree(frees, piece)
	assert.False(t, ok)
}

func TestChooseFreeEqualScorePrefersNonRotated(t *testing.T) {
	// A square piece: rotating it never changes its footprint or score, so
	// the chooser must still report Original.
	frees := []FreeRect{{X: 0, Y: 0, W: 100, H: 100}}
	piece := Piece{W: 50, H: 50, RotationAllowed: true}

	_, _, _, _, _, orientation, ok := ChooseFree(frees, piece)
	require.True(t, ok)
	assert.Equal(t, Original, orientation)
}
