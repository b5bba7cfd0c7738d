package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseEdgeSequentialFillsTopRow(t *testing.T) {
	frees := []FreeRect{{X: 0, Y: 0, W: 1000, H: 500}}
	piece := Piece{W: 400, H: 100, RotationAllowed: false}

	_, x, y, w, h, orientation, ok := ChooseEdge(frees, piece, 1000, 500, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 400, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, Original, orientation)
}

func TestChooseEdgeFallsBackToBottomRow(t *testing.T) {
	// A free rect that only covers the bottom band.
	frees := []FreeRect{{X: 0, Y: 400, W: 1000, H: 100}}
	piece := Piece{W: 400, H: 100, RotationAllowed: false}

	_, x, y, _, _, _, ok := ChooseEdge(frees, piece, 1000, 500, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 400, y)
}

func TestChooseEdgeRejectsOversizedPiece(t *testing.T) {
	frees := []FreeRect{{X: 0, Y: 0, W: 1000, H: 500}}
	piece := Piece{W: 2000, H: 100, RotationAllowed: false}
	_, _, _, _, _, _, ok := ChooseEdge(frees, piece, 1000, 500, 0, 0)
	assert.False(t, ok)

	tall := Piece{W: 100, H: 600, RotationAllowed: false}
	_, _, _, _, _, _, ok = ChooseEdge(frees, tall, 1000, 500, 0, 0)
	assert.False(t, ok)
}

func TestPanelPlaceEdgeScenarioE(t *testing.T) {
	// spec.md §8 scenario (e).
	p := newPanel(0, 1000, 500)
	settings := NewSettings(100, true)
	piece := PieceType{TypeID: 0, W: 400, H: 100, Quantity: 3, RotationAllowed: false}
	pieces := Expand([]PieceType{piece})

	for _, pc := range pieces {
		ok := p.place(pc, settings)
		require.True(t, ok)
	}

	require.Len(t, p.Placements, 3)
	assert.Equal(t, Rectangle{X: 0, Y: 0, W: 400, H: 100}, asRect(p.Placements[0]))
	assert.Equal(t, Rectangle{X: 400, Y: 0, W: 400, H: 100}, asRect(p.Placements[1]))
	assert.Equal(t, Rectangle{X: 0, Y: 400, W: 400, H: 100}, asRect(p.Placements[2]))
	assert.Equal(t, 800, p.topX)
	assert.Equal(t, 400, p.bottomX)
}

func asRect(pl Placement) Rectangle {
	return Rectangle{X: pl.X, Y: pl.Y, W: pl.W, H: pl.H}
}
