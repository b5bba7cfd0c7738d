package packer

// SplitAround computes the vertical-first guillotine residuals left behind
// in usedRect after placed has been cut from its top-left corner. It
// returns up to three non-empty rectangles, in a fixed order:
//
//  1. the right strip: what remains of usedRect to the right of placed
//  2. the bottom strip, the width of placed: what remains below placed
//  3. the bottom-left corner: what remains below placed and to the left
//     of placed but still inside usedRect
//
// Order is only observable via free-rect listings; it does not affect
// subsequent placement, since every query re-examines the whole registry.
//
// This function assumes placed sits at usedRect's top-left corner (the
// free-mode placement path). It must not be used for edge-aligned
// placements, which are generally not anchored there — see SubtractPlaced.
func SplitAround(usedRect, placed Rectangle) []FreeRect {
	var out []FreeRect

	rightW := usedRect.X + usedRect.W - (placed.X + placed.W)
	if rightW > 0 {
		out = append(out, FreeRect{
			X: placed.X + placed.W,
			Y: usedRect.Y,
			W: rightW,
			H: usedRect.H,
		})
	}

	bottomH := usedRect.Y + usedRect.H - (placed.Y + placed.H)
	if bottomH > 0 {
		out = append(out, FreeRect{
			X: placed.X,
			Y: placed.Y + placed.H,
			W: placed.W,
			H: bottomH,
		})
	}

	cornerW := placed.X - usedRect.X
	if cornerW > 0 && bottomH > 0 {
		out = append(out, FreeRect{
			X: usedRect.X,
			Y: placed.Y + placed.H,
			W: cornerW,
			H: bottomH,
		})
	}

	return out
}

// SubtractPlaced restores invariant 2 (no free rectangle overlaps a
// placement) after placed has been committed. Every free rectangle that
// does not overlap placed is kept unchanged; every one that does is
// replaced by up to four strips covering the parts of the original free
// rectangle outside placed: left and right strips span the free
// rectangle's full original height, top and bottom strips its full
// original width. No strip overlaps placed, but the strips may overlap one
// another at the corners, as MaxRects free rectangles do.
func SubtractPlaced(frees []FreeRect, placed Rectangle) []FreeRect {
	out := make([]FreeRect, 0, len(frees))
	for _, fr := range frees {
		if !Overlaps(fr, placed) {
			out = append(out, fr)
			continue
		}

		if placed.X > fr.X {
			out = append(out, FreeRect{X: fr.X, Y: fr.Y, W: placed.X - fr.X, H: fr.H})
		}
		if placed.X+placed.W < fr.X+fr.W {
			out = append(out, FreeRect{
				X: placed.X + placed.W,
				Y: fr.Y,
				W: fr.X + fr.W - (placed.X + placed.W),
				H: fr.H,
			})
		}
		if placed.Y > fr.Y {
			out = append(out, FreeRect{X: fr.X, Y: fr.Y, W: fr.W, H: placed.Y - fr.Y})
		}
		if placed.Y+placed.H < fr.Y+fr.H {
			out = append(out, FreeRect{
				X: fr.X,
				Y: placed.Y + placed.H,
				W: fr.W,
				H: fr.Y + fr.H - (placed.Y + placed.H),
			})
		}
	}
	return out
}

// MergeColinear repeatedly merges pairs of free rectangles that share a
// full edge exactly: same height and y, adjoining on x (merge
// horizontally), or same width and x, adjoining on y (merge vertically). It is a bounded greedy fixpoint — it repeats until no pair
// merges, which must terminate because every merge strictly reduces the
// rectangle count.
func MergeColinear(frees []FreeRect) []FreeRect {
	cur := append([]FreeRect(nil), frees...)

	for {
		merged, changed := mergeOnePass(cur)
		cur = merged
		if !changed {
			return cur
		}
	}
}

func mergeOnePass(frees []FreeRect) ([]FreeRect, bool) {
	used := make([]bool, len(frees))
	out := make([]FreeRect, 0, len(frees))
	changed := false

	for i := range frees {
		if used[i] {
			continue
		}
		r := frees[i]
		for j := i + 1; j < len(frees); j++ {
			if used[j] {
				continue
			}
			r2 := frees[j]

			if r.H == r2.H && r.Y == r2.Y && (r.X+r.W == r2.X || r2.X+r2.W == r.X) {
				x := r.X
				if r2.X < x {
					x = r2.X
				}
				r = FreeRect{X: x, Y: r.Y, W: r.W + r2.W, H: r.H}
				used[j] = true
				changed = true
				continue
			}
			if r.W == r2.W && r.X == r2.X && (r.Y+r.H == r2.Y || r2.Y+r2.H == r.Y) {
				y := r.Y
				if r2.Y < y {
					y = r2.Y
				}
				r = FreeRect{X: r.X, Y: y, W: r.W, H: r.H + r2.H}
				used[j] = true
				changed = true
			}
		}
		out = append(out, r)
		used[i] = true
	}

	return out, changed
}

// FilterSmall drops every free rectangle with either dimension below m,
// restoring invariant 3 (every surviving free rectangle is useful).
func FilterSmall(frees []FreeRect, m int) []FreeRect {
	out := make([]FreeRect, 0, len(frees))
	for _, fr := range frees {
		if fr.W >= m && fr.H >= m {
			out = append(out, fr)
		}
	}
	return out
}
