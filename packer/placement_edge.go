package packer

// Edge-aligned ("poignet") mode score offsets. These reproduce spec.md
// §4.5's literal scalar formulas: top-row sequential is the cheapest,
// top-row flexible carries a fixed penalty so sequential strictly wins
// when both apply, and the whole bottom row is penalized further so it is
// only ever chosen once the top row has nothing left to offer.
const (
	edgeTopSequentialBase    = 0
	edgeTopFlexibleBase      = 10000
	edgeBottomSequentialBase = 100000
	edgeBottomFlexibleBase   = 110000
)

type edgeCandidate struct {
	index int
	x, y  int
	score int
	found bool
}

// rowCandidate scans frees for the minimum-score edge-aligned placement of
// a (pw,ph) piece in the row whose top edge is at rowY, given the row's
// current cursor (the right edge of the rightmost piece placed in that
// row so far) and panel width W.
func rowCandidate(frees []FreeRect, pw, ph, rowY, cursor, W, baseSeq, baseFlex int) edgeCandidate {
	best := edgeCandidate{index: -1}

	for i, fr := range frees {
		if fr.W < pw {
			continue
		}
		if !(fr.Y <= rowY && fr.Y+fr.H >= rowY+ph) {
			continue
		}

		leftover := fr.Area() - pw*ph

		var x, score int
		switch {
		case fr.X <= cursor && fr.X+fr.W >= cursor+pw && cursor+pw <= W:
			x = cursor
			score = baseSeq + x*100 + leftover/1000
		default:
			x = fr.X
			if cursor > x {
				x = cursor
			}
			limit := fr.X + fr.W
			if W < limit {
				limit = W
			}
			if x+pw > limit {
				continue
			}
			score = baseFlex + x*100 + leftover/1000
		}

		if !best.found || score < best.score {
			best = edgeCandidate{index: i, x: x, y: rowY, score: score, found: true}
		}
	}

	return best
}

// chooseEdgeOrientation runs the full top-then-bottom search of spec.md
// §4.5 for one fixed (pw,ph) orientation.
func chooseEdgeOrientation(frees []FreeRect, pw, ph, W, H, topX, bottomX int) edgeCandidate {
	if ph > H || pw > W {
		return edgeCandidate{index: -1}
	}

	if top := rowCandidate(frees, pw, ph, 0, topX, W, edgeTopSequentialBase, edgeTopFlexibleBase); top.found {
		return top
	}

	return rowCandidate(frees, pw, ph, H-ph, bottomX, W, edgeBottomSequentialBase, edgeBottomFlexibleBase)
}

// ChooseEdge implements the edge-aligned placement strategy of spec.md
// §4.5: every placement must touch the top (y==0) or bottom (y+h==H) row.
// Like ChooseFree, it tries both orientations when rotation is allowed and
// keeps the better-scoring one, non-rotated winning ties.
func ChooseEdge(frees []FreeRect, piece Piece, W, H, topX, bottomX int) (index, x, y, w, h int, orientation Orientation, ok bool) {
	original := chooseEdgeOrientation(frees, piece.W, piece.H, W, H, topX, bottomX)

	best := original
	bestOrientation := Original
	bestW, bestH := piece.W, piece.H

	if piece.RotationAllowed && piece.W != piece.H {
		rotated := chooseEdgeOrientation(frees, piece.H, piece.W, W, H, topX, bottomX)
		if rotated.found && (!best.found || rotated.score < best.score) {
			best = rotated
			bestOrientation = Rotated
			bestW, bestH = piece.H, piece.W
		}
	}

	if !best.found {
		return -1, 0, 0, 0, 0, Original, false
	}

	return best.index, best.x, best.y, bestW, bestH, bestOrientation, true
}
