package packer

import "sort"

// Expand turns an ordered multiset of PieceType demand into a flat,
// ordered sequence of unit Piece values, assigning PieceID in the order
// types appear and, within each type, ascending order of unit index. It
// then stable-sorts the sequence descending by area; ties keep expansion
// order. This sort is the only reordering the engine performs — every
// downstream component treats the result as the canonical placement
// order.
func Expand(types []PieceType) []Piece {
	pieces := make([]Piece, 0, estimateCount(types))
	id := 0
	for _, t := range types {
		for i := 0; i < t.Quantity; i++ {
			pieces = append(pieces, Piece{
				PieceID:         id,
				TypeID:          t.TypeID,
				W:               t.W,
				H:               t.H,
				RotationAllowed: t.RotationAllowed,
			})
			id++
		}
	}

	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].W*pieces[i].H > pieces[j].W*pieces[j].H
	})

	return pieces
}

func estimateCount(types []PieceType) int {
	n := 0
	for _, t := range types {
		if t.Quantity > 0 {
			n += t.Quantity
		}
	}
	return n
}
