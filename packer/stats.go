package packer

// assemble computes the final Stats (spec.md §3, testable property 8) and
// wraps the finished panels and rejected pieces into a Result.
func assemble(panels []Panel, rejected []Piece, settings Settings) Result {
	var usedArea, wasteArea, panelArea, usableWaste int

	for _, p := range panels {
		for _, pl := range p.Placements {
			usedArea += pl.W * pl.H
		}
		for _, fr := range p.FreeRects {
			usableWaste += fr.Area()
		}
		panelArea += p.W * p.H
	}
	wasteArea = panelArea - usedArea

	var usedPct, wastePct float64
	if panelArea > 0 {
		usedPct = float64(usedArea) / float64(panelArea) * 100.0
		wastePct = float64(wasteArea) / float64(panelArea) * 100.0
	}

	return Result{
		Panels:   panels,
		Rejected: rejected,
		Stats: Stats{
			PanelCount:      len(panels),
			TotalUsedArea:   usedArea,
			TotalWasteArea:  wasteArea,
			TotalPanelArea:  panelArea,
			UsedPercentage:  usedPct,
			WastePercentage: wastePct,
			UsableWasteArea: usableWaste,
			MinWasteSize:    settings.MinWasteSize,
		},
	}
}
