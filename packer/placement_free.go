package packer

// freeScore is the lexicographic Bottom-Left Best Fit key: lower y wins,
// then lower x, then smaller leftover area. Spec.md §4.4 permits this to
// be implemented either as the coefficient-weighted scalar
// y*100000+x*100+leftover/1000 or as a literal lexicographic comparison;
// this engine uses the literal form to avoid the precision hazards a
// floating-point total order could introduce, per spec.md §9's guidance.
type freeScore struct {
	y, x, leftover int
}

// less reports whether a sorts strictly before b.
func (a freeScore) less(b freeScore) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.leftover < b.leftover
}

type freeFit struct {
	index int
	score freeScore
	found bool
}

// bestFreeFit scans frees in order and returns the lowest-scoring
// rectangle that contains a piece of size (pw,ph). Ties resolve to first
// encounter, since a later candidate only replaces the incumbent when it
// scores strictly lower.
func bestFreeFit(frees []FreeRect, pw, ph int) freeFit {
	best := freeFit{index: -1}
	for i, fr := range frees {
		if !fr.ContainsSize(pw, ph) {
			continue
		}
		s := freeScore{y: fr.Y, x: fr.X, leftover: fr.Area() - pw*ph}
		if !best.found || s.less(best.score) {
			best = freeFit{index: i, score: s, found: true}
		}
	}
	return best
}

// ChooseFree implements the free-mode Bottom-Left Best Fit placement
// strategy of spec.md §4.4: it scans every free rectangle for the
// lowest-scoring fit, and — when the piece's rotation policy allows it —
// repeats the scan with width and height swapped, keeping whichever
// orientation scores lower. Equal scores keep the non-rotated orientation,
// since it is evaluated first and only a strictly lower score displaces it.
//
// It returns the index of the chosen free rectangle, the placement
// position and oriented size, the orientation used, and whether any free
// rectangle fit at all.
func ChooseFree(frees []FreeRect, piece Piece) (index, x, y, w, h int, orientation Orientation, ok bool) {
	original := bestFreeFit(frees, piece.W, piece.H)

	best := original
	bestOrientation := Original
	bestW, bestH := piece.W, piece.H

	if piece.RotationAllowed && piece.W != piece.H {
		rotated := bestFreeFit(frees, piece.H, piece.W)
		if rotated.found && (!best.found || rotated.score.less(best.score)) {
			best = rotated
			bestOrientation = Rotated
			bestW, bestH = piece.H, piece.W
		}
	}

	if !best.found {
		return -1, 0, 0, 0, 0, Original, false
	}

	chosen := frees[best.index]
	return best.index, chosen.X, chosen.Y, bestW, bestH, bestOrientation, true
}
