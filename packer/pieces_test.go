package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAssignsStableMonotonicIDs(t *testing.T) {
	types := []PieceType{
		{TypeID: 0, W: 10, H: 10, Quantity: 2, RotationAllowed: true},
		{TypeID: 1, W: 5, H: 5, Quantity: 1, RotationAllowed: false},
	}

	pieces := Expand(types)
	require.Len(t, pieces, 3)

	ids := make(map[int]bool)
	for _, p := range pieces {
		ids[p.PieceID] = true
	}
	for i := 0; i < 3; i++ {
		assert.True(t, ids[i], "expected piece id %d present", i)
	}
}

func TestExpandSortsDescendingByAreaStable(t *testing.T) {
	types := []PieceType{
		{TypeID: 0, W: 100, H: 100, Quantity: 1, RotationAllowed: true}, // area 10000, id 0
		{TypeID: 1, W: 50, H: 50, Quantity: 1, RotationAllowed: true},   // area 2500, id 1
		{TypeID: 2, W: 100, H: 100, Quantity: 1, RotationAllowed: true}, // area 10000, id 2
	}

	pieces := Expand(types)
	require.Len(t, pieces, 3)

	// Both area-10000 pieces (ids 0 and 2) must sort before the area-2500
	// piece, and ties must preserve expansion order.
	assert.Equal(t, 0, pieces[0].PieceID)
	assert.Equal(t, 2, pieces[1].PieceID)
	assert.Equal(t, 1, pieces[2].PieceID)
}

func TestExpandZeroQuantityProducesNothing(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 1, H: 1, Quantity: 0, RotationAllowed: true}}
	assert.Empty(t, Expand(types))
}
