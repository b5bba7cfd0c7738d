package packer

// newPanel returns an empty panel with a single free rectangle spanning
// the whole stock sheet.
func newPanel(index, w, h int) Panel {
	return Panel{
		PanelIndex: index,
		W:          w,
		H:          h,
		FreeRects:  []FreeRect{{X: 0, Y: 0, W: w, H: h}},
	}
}

// placeFree attempts to place piece into the panel using free-mode
// Bottom-Left Best Fit (spec.md §4.4). On success it records the
// Placement, and updates the free-rect registry in the order spec.md §4.3
// mandates: remove the used rectangle, push SplitAround's guillotine
// residuals, re-subtract the new placement from every surviving free
// rectangle, merge colinear neighbors, then drop anything too small.
func (p *Panel) placeFree(piece Piece, minWasteSize int) bool {
	idx, x, y, w, h, orientation, ok := ChooseFree(p.FreeRects, piece)
	if !ok {
		return false
	}

	used := p.FreeRects[idx]
	placed := Rectangle{X: x, Y: y, W: w, H: h}

	p.FreeRects = removeAt(p.FreeRects, idx)
	p.FreeRects = append(p.FreeRects, SplitAround(used, placed)...)
	p.FreeRects = SubtractPlaced(p.FreeRects, placed)
	p.FreeRects = MergeColinear(p.FreeRects)
	p.FreeRects = FilterSmall(p.FreeRects, minWasteSize)

	p.Placements = append(p.Placements, Placement{
		X: x, Y: y, W: w, H: h,
		PieceID:     piece.PieceID,
		TypeID:      piece.TypeID,
		Orientation: orientation,
		PanelIndex:  p.PanelIndex,
	})

	return true
}

// placeEdge attempts to place piece into the panel using edge-aligned
// mode (spec.md §4.5). The registry update skips SplitAround — an
// edge-aligned placement is generally not anchored at the chosen free
// rectangle's top-left corner, so the guillotine split assumption does not
// hold — and instead relies solely on the general subtraction.
func (p *Panel) placeEdge(piece Piece, minWasteSize int) bool {
	idx, x, y, w, h, orientation, ok := ChooseEdge(p.FreeRects, piece, p.W, p.H, p.topX, p.bottomX)
	if !ok {
		return false
	}
	_ = idx // the chosen rect is not removed pre-split; subtraction handles it

	placed := Rectangle{X: x, Y: y, W: w, H: h}

	p.FreeRects = SubtractPlaced(p.FreeRects, placed)
	p.FreeRects = MergeColinear(p.FreeRects)
	p.FreeRects = FilterSmall(p.FreeRects, minWasteSize)

	p.Placements = append(p.Placements, Placement{
		X: x, Y: y, W: w, H: h,
		PieceID:     piece.PieceID,
		TypeID:      piece.TypeID,
		Orientation: orientation,
		PanelIndex:  p.PanelIndex,
	})

	if y == 0 {
		if x+w > p.topX {
			p.topX = x + w
		}
	}
	if y+h == p.H {
		if x+w > p.bottomX {
			p.bottomX = x + w
		}
	}

	return true
}

// place dispatches to the mode-appropriate placement strategy.
func (p *Panel) place(piece Piece, settings Settings) bool {
	if settings.EdgeAligned {
		return p.placeEdge(piece, settings.MinWasteSize)
	}
	return p.placeFree(piece, settings.MinWasteSize)
}

// recomputeCursors rebuilds topX/bottomX from the panel's current
// placements. Back-filling a piece into an existing panel (spec.md §4.6)
// can add placements out of cursor order, so the cursors are recomputed
// from scratch rather than incrementally adjusted.
func (p *Panel) recomputeCursors() {
	top, bottom := 0, 0
	for _, pl := range p.Placements {
		if pl.Y == 0 && pl.X+pl.W > top {
			top = pl.X + pl.W
		}
		if pl.Y+pl.H == p.H && pl.X+pl.W > bottom {
			bottom = pl.X + pl.W
		}
	}
	p.topX, p.bottomX = top, bottom
}

func removeAt(frees []FreeRect, idx int) []FreeRect {
	out := make([]FreeRect, 0, len(frees)-1)
	out = append(out, frees[:idx]...)
	out = append(out, frees[idx+1:]...)
	return out
}
