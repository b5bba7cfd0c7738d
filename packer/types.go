// Package packer implements the guillotine bin-packing engine: a single
// pure function that places a multiset of rectangular pieces onto a
// sequence of identical stock panels and reports the residual free space
// and any pieces that could not be placed.
//
// The engine is deterministic and single-pass. It performs no I/O, reads
// only its arguments, and returns a freshly allocated Result on every call.
package packer

// Rectangle is an axis-aligned rectangle with integer millimetre
// coordinates. x,y are the position of the top-left corner; w,h are the
// size. All fields are non-negative; w and h are positive for any
// Rectangle that denotes real area.
type Rectangle struct {
	X, Y int
	W, H int
}

// PieceType is one line of input demand: a size and a quantity of
// congruent rectangles to cut, plus a per-type rotation policy.
type PieceType struct {
	TypeID          int
	W, H            int
	Quantity        int
	RotationAllowed bool
}

// Piece is a single expanded unit of demand. PieceID is a globally unique,
// monotonically assigned ordinal across the whole expansion.
type Piece struct {
	PieceID         int
	TypeID          int
	W, H            int
	RotationAllowed bool
}

// Orientation records whether a placement used the piece's original
// dimensions or its rotated (w/h swapped) dimensions.
type Orientation int

const (
	Original Orientation = iota
	Rotated
)

// Placement is a single committed (position, orientation) of one piece on
// one panel. W,H are the oriented dimensions actually cut: if Orientation
// is Rotated, they are the piece's original H,W swapped.
type Placement struct {
	X, Y        int
	W, H        int
	PieceID     int
	TypeID      int
	Orientation Orientation
	PanelIndex  int
}

// Rotated reports whether this placement used the rotated orientation.
func (p Placement) Rotated() bool { return p.Orientation == Rotated }

// FreeRect is a Rectangle inside the stock rectangle currently marked as
// free. Free rectangles on a panel may overlap one another (the MaxRects
// property) — they are candidate placement windows, not a partition.
type FreeRect = Rectangle

// Panel is the state of one physical stock sheet. All panels in a Result
// share the same (W, H).
type Panel struct {
	PanelIndex int
	W, H       int
	Placements []Placement
	FreeRects  []FreeRect

	// topX, bottomX are edge-aligned-mode cursors: the right edge of the
	// rightmost piece placed so far in the top row (y==0) and bottom row
	// (y+h==H) respectively. Unused in free mode.
	topX, bottomX int
}

// Stats summarizes material usage across every panel in a Result.
type Stats struct {
	PanelCount        int
	TotalUsedArea     int
	TotalWasteArea    int
	TotalPanelArea    int
	UsedPercentage    float64
	WastePercentage   float64
	UsableWasteArea   int
	MinWasteSize      int
}

// Result is the immutable outcome of a single Optimize call.
type Result struct {
	Panels   []Panel
	Rejected []Piece
	Stats    Stats
}

// Settings configures one Optimize invocation.
type Settings struct {
	// MinWasteSize is the smallest dimension (on both axes) a free
	// rectangle must have to survive FilterSmall. Defaults to 100 when
	// constructed via NewSettings.
	MinWasteSize int
	// EdgeAligned selects edge-aligned ("poignet") placement mode: every
	// placement must touch y==0 or y+h==H.
	EdgeAligned bool
}

// NewSettings returns Settings with the spec-mandated default
// (MinWasteSize=100) applied when the caller passes a non-positive value.
func NewSettings(minWasteSize int, edgeAligned bool) Settings {
	if minWasteSize <= 0 {
		minWasteSize = 100
	}
	return Settings{MinWasteSize: minWasteSize, EdgeAligned: edgeAligned}
}

// maxPanels is the hard safety cap on the number of panels Optimize will
// open (spec.md §4.6, §5).
const maxPanels = 1000
