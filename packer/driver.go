package packer

// Optimize is the engine's single entry point (spec.md §2, §5): a pure
// function over panelW, panelH, the input piece-type multiset and
// Settings, returning a freshly allocated Result. It performs no I/O, and
// calling it twice with structurally equal inputs produces structurally
// equal outputs (property 9, spec.md §8).
func Optimize(panelW, panelH int, types []PieceType, settings Settings) Result {
	if invalidInput(panelW, panelH, types) {
		return Result{
			Panels:   nil,
			Rejected: nil,
			Stats: Stats{
				PanelCount:      0,
				UsedPercentage:  0,
				WastePercentage: 100,
				MinWasteSize:    settings.MinWasteSize,
			},
		}
	}

	pending := Expand(types)
	var panels []Panel

	for len(pending) > 0 {
		pending = backfill(panels, pending, settings)
		if len(pending) == 0 {
			break
		}
		if len(panels) >= maxPanels {
			break
		}

		candidate := newPanel(len(panels), panelW, panelH)
		remaining, placedAny := sweepPanel(&candidate, pending, settings)
		if !placedAny {
			// The new panel placed nothing: every remaining piece is
			// individually too large for an empty panel. Per spec.md §9's
			// resolved open question, a zero-placement panel is never
			// appended to the result, and the driver terminates here.
			break
		}

		panels = append(panels, candidate)
		pending = remaining
	}

	return assemble(panels, pending, settings)
}

// invalidInput reports the spec.md §7 "Invalid input" condition: a
// non-positive panel dimension, or any piece type with a non-positive
// width, height, or quantity (the PieceType invariant of spec.md §3).
func invalidInput(panelW, panelH int, types []PieceType) bool {
	if panelW <= 0 || panelH <= 0 {
		return true
	}
	for _, t := range types {
		if t.W <= 0 || t.H <= 0 || t.Quantity <= 0 {
			return true
		}
	}
	return false
}

// backfill repeatedly sweeps every existing panel, in index order, against
// the still-pending pieces, until a full sweep makes no progress (spec.md
// §4.6 step 1). A newer panel's placements are always tried against older
// panels before the caller considers opening a further one.
func backfill(panels []Panel, pending []Piece, settings Settings) []Piece {
	for {
		progress := false
		for i := range panels {
			var placedAny bool
			pending, placedAny = sweepPanel(&panels[i], pending, settings)
			if placedAny {
				progress = true
			}
		}
		if !progress {
			return pending
		}
	}
}

// sweepPanel attempts to place every piece in pending into panel, in
// order, using the mode-appropriate strategy. It returns the pieces that
// still did not fit and whether anything landed at all.
func sweepPanel(panel *Panel, pending []Piece, settings Settings) ([]Piece, bool) {
	remaining := make([]Piece, 0, len(pending))
	placedAny := false

	for _, piece := range pending {
		if panel.place(piece, settings) {
			placedAny = true
		} else {
			remaining = append(remaining, piece)
		}
	}

	if placedAny {
		panel.recomputeCursors()
	}

	return remaining, placedAny
}
