package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (a) A single trivial placement: one piece, one panel, nothing rejected.
func TestOptimizeSinglePlacement(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 100, H: 100, Quantity: 1, RotationAllowed: false}}
	result := Optimize(1000, 1000, types, NewSettings(100, false))

	require.Equal(t, 1, result.Stats.PanelCount)
	require.Empty(t, result.Rejected)
	require.Len(t, result.Panels[0].Placements, 1)
	assert.Equal(t, Rectangle{X: 0, Y: 0, W: 100, H: 100}, asRect(result.Panels[0].Placements[0]))
}

// (b) Rotation improves fit: a piece that only fits a narrow column when
// rotated must be placed rotated rather than rejected.
func TestOptimizeRotationImprovesFit(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 250, H: 50, Quantity: 1, RotationAllowed: true}}
	result := Optimize(60, 300, types, NewSettings(100, false))

	require.Empty(t, result.Rejected)
	require.Equal(t, 1, result.Stats.PanelCount)
	require.Len(t, result.Panels[0].Placements, 1)
	pl := result.Panels[0].Placements[0]
	assert.True(t, pl.Rotated())
	assert.Equal(t, 50, pl.W)
	assert.Equal(t, 250, pl.H)
}

// (c) Rotation disallowed forces rejection: the same piece with rotation
// forbidden cannot fit the 100-wide panel at all, so no panel is opened.
func TestOptimizeRotationDisallowedRejectsAndOpensNoPanel(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 200, H: 50, Quantity: 1, RotationAllowed: false}}
	result := Optimize(100, 300, types, NewSettings(100, false))

	assert.Equal(t, 0, result.Stats.PanelCount)
	assert.Empty(t, result.Panels)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 200, result.Rejected[0].W)
}

// (d) Multi-panel with back-fill: demand that cannot fit on one panel opens
// a second, and any piece that fits into leftover space on the first panel
// is back-filled there instead of starting a third.
func TestOptimizeMultiPanelBackfill(t *testing.T) {
	types := []PieceType{
		{TypeID: 0, W: 900, H: 900, Quantity: 2, RotationAllowed: false},
		{TypeID: 1, W: 50, H: 50, Quantity: 1, RotationAllowed: false},
	}
	result := Optimize(1000, 1000, types, NewSettings(100, false))

	require.Empty(t, result.Rejected)
	require.Equal(t, 2, result.Stats.PanelCount)

	totalSmall := 0
	for _, p := range result.Panels {
		for _, pl := range p.Placements {
			if pl.TypeID == 1 {
				totalSmall++
			}
		}
	}
	assert.Equal(t, 1, totalSmall)
}

// (e) Edge-aligned mode: spec.md's concrete poignet scenario.
func TestOptimizeEdgeAlignedScenario(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 400, H: 100, Quantity: 3, RotationAllowed: false}}
	result := Optimize(1000, 500, types, NewSettings(100, true))

	require.Empty(t, result.Rejected)
	require.Equal(t, 1, result.Stats.PanelCount)
	require.Len(t, result.Panels[0].Placements, 3)

	got := []Rectangle{}
	for _, pl := range result.Panels[0].Placements {
		got = append(got, asRect(pl))
	}
	want := []Rectangle{
		{X: 0, Y: 0, W: 400, H: 100},
		{X: 400, Y: 0, W: 400, H: 100},
		{X: 0, Y: 400, W: 400, H: 100},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 800, result.Panels[0].topX)
	assert.Equal(t, 400, result.Panels[0].bottomX)
}

// (f) Invalid panel dimensions yield the empty-result path, never a panic
// and never a placement attempt.
func TestOptimizeInvalidPanelDimensions(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 10, H: 10, Quantity: 1, RotationAllowed: false}}

	result := Optimize(0, 500, types, NewSettings(100, false))
	assert.Equal(t, 0, result.Stats.PanelCount)
	assert.Equal(t, 100.0, result.Stats.WastePercentage)
	assert.Nil(t, result.Panels)
	assert.Nil(t, result.Rejected)

	result = Optimize(500, -1, types, NewSettings(100, false))
	assert.Equal(t, 0, result.Stats.PanelCount)
}

func TestOptimizeInvalidPieceTypeAlsoEmpty(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 10, H: -1, Quantity: 1, RotationAllowed: false}}
	result := Optimize(500, 500, types, NewSettings(100, false))
	assert.Equal(t, 0, result.Stats.PanelCount)
	assert.Equal(t, 100.0, result.Stats.WastePercentage)
}

// Containment: every placement lies fully within its panel's bounds.
func TestInvariantContainment(t *testing.T) {
	result := optimizeSample(t)
	for _, p := range result.Panels {
		for _, pl := range p.Placements {
			assert.GreaterOrEqual(t, pl.X, 0)
			assert.GreaterOrEqual(t, pl.Y, 0)
			assert.LessOrEqual(t, pl.X+pl.W, p.W)
			assert.LessOrEqual(t, pl.Y+pl.H, p.H)
		}
	}
}

// Non-overlap: no two placements on the same panel share interior area.
func TestInvariantNonOverlap(t *testing.T) {
	result := optimizeSample(t)
	for _, p := range result.Panels {
		for i := range p.Placements {
			for j := i + 1; j < len(p.Placements); j++ {
				a := asRect(p.Placements[i])
				b := asRect(p.Placements[j])
				assert.False(t, Overlaps(a, b), "placements %+v and %+v must not overlap", a, b)
			}
		}
	}
}

// Free-rect disjointness from placements: no free rectangle overlaps any
// committed placement on the same panel.
func TestInvariantFreeRectsDisjointFromPlacements(t *testing.T) {
	result := optimizeSample(t)
	for _, p := range result.Panels {
		for _, fr := range p.FreeRects {
			for _, pl := range p.Placements {
				assert.False(t, Overlaps(fr, asRect(pl)))
			}
		}
	}
}

// Minimum waste size: every surviving free rectangle is at least
// MinWasteSize on both axes.
func TestInvariantMinimumWasteSize(t *testing.T) {
	settings := NewSettings(100, false)
	result := Optimize(1000, 1000, []PieceType{
		{TypeID: 0, W: 300, H: 300, Quantity: 4, RotationAllowed: false},
	}, settings)

	for _, p := range result.Panels {
		for _, fr := range p.FreeRects {
			assert.True(t, fr.W >= settings.MinWasteSize && fr.H >= settings.MinWasteSize,
				"free rect %+v smaller than minimum waste size", fr)
		}
	}
}

// Conservation: every expanded piece is either placed exactly once or
// rejected exactly once, never both, never neither.
func TestInvariantConservation(t *testing.T) {
	types := []PieceType{
		{TypeID: 0, W: 900, H: 900, Quantity: 2, RotationAllowed: false},
		{TypeID: 1, W: 50, H: 50, Quantity: 3, RotationAllowed: false},
		{TypeID: 2, W: 2000, H: 2000, Quantity: 1, RotationAllowed: false}, // too big, always rejected
	}
	result := Optimize(1000, 1000, types, NewSettings(100, false))

	expanded := Expand(types)
	seen := make(map[int]bool)
	for _, p := range result.Panels {
		for _, pl := range p.Placements {
			require.False(t, seen[pl.PieceID], "piece %d placed twice", pl.PieceID)
			seen[pl.PieceID] = true
		}
	}
	for _, r := range result.Rejected {
		require.False(t, seen[r.PieceID], "piece %d both placed and rejected", r.PieceID)
		seen[r.PieceID] = true
	}
	assert.Equal(t, len(expanded), len(seen))
}

// Edge-aligned invariant: in poignet mode every placement touches the top
// or bottom edge of its panel.
func TestInvariantEdgeAligned(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 150, H: 120, Quantity: 6, RotationAllowed: true}}
	result := Optimize(900, 600, types, NewSettings(100, true))

	for _, p := range result.Panels {
		for _, pl := range p.Placements {
			touchesTop := pl.Y == 0
			touchesBottom := pl.Y+pl.H == p.H
			assert.True(t, touchesTop || touchesBottom, "placement %+v touches neither edge", pl)
		}
	}
}

// Orientation: a Rotated placement's W,H are the originating piece's H,W
// swapped; an Original placement's W,H equal the piece's W,H verbatim.
func TestInvariantOrientationDimensionsMatchPieceType(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 300, H: 120, Quantity: 4, RotationAllowed: true}}
	result := Optimize(700, 700, types, NewSettings(100, false))

	for _, p := range result.Panels {
		for _, pl := range p.Placements {
			if pl.Rotated() {
				assert.Equal(t, 120, pl.W)
				assert.Equal(t, 300, pl.H)
			} else {
				assert.Equal(t, 300, pl.W)
				assert.Equal(t, 120, pl.H)
			}
		}
	}
}

// Area accounting: used + waste area equals total panel area on every run
// that opens at least one panel.
func TestInvariantAreaAccounting(t *testing.T) {
	result := optimizeSample(t)
	assert.Equal(t, result.Stats.TotalPanelArea, result.Stats.TotalUsedArea+result.Stats.TotalWasteArea)
}

// Determinism: two calls with structurally equal inputs produce
// structurally equal outputs.
func TestInvariantDeterminism(t *testing.T) {
	types := []PieceType{
		{TypeID: 0, W: 237, H: 118, Quantity: 5, RotationAllowed: true},
		{TypeID: 1, W: 80, H: 80, Quantity: 7, RotationAllowed: false},
	}
	settings := NewSettings(90, true)

	first := Optimize(800, 650, types, settings)
	second := Optimize(800, 650, types, settings)

	assert.Equal(t, first, second)
}

// The 1000-panel cap: demand that can never be exhausted still terminates.
func TestOptimizeRespectsPanelCap(t *testing.T) {
	types := []PieceType{{TypeID: 0, W: 999, H: 999, Quantity: 5000, RotationAllowed: false}}
	result := Optimize(1000, 1000, types, NewSettings(100, false))
	assert.LessOrEqual(t, result.Stats.PanelCount, 1000)
	assert.NotEmpty(t, result.Rejected)
}

func optimizeSample(t *testing.T) Result {
	t.Helper()
	types := []PieceType{
		{TypeID: 0, W: 400, H: 300, Quantity: 3, RotationAllowed: true},
		{TypeID: 1, W: 150, H: 150, Quantity: 4, RotationAllowed: false},
	}
	return Optimize(1000, 1000, types, NewSettings(100, false))
}
