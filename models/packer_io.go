package models

// PieceTypeInput is the JSON shape of one demand line in an optimize
// request, mirroring packer.PieceType.
type PieceTypeInput struct {
	TypeID          int  `json:"type_id" example:"0"`
	Width           int  `json:"width" binding:"required,gt=0" example:"600"`
	Height          int  `json:"height" binding:"required,gt=0" example:"400"`
	Quantity        int  `json:"quantity" binding:"required,gt=0" example:"4"`
	RotationAllowed bool `json:"rotation_allowed" example:"true"`
}

// OptimizeRequest is the POST /api/optimize request body.
type OptimizeRequest struct {
	PanelWidth   int              `json:"panel_width" binding:"required,gt=0" example:"2440"`
	PanelHeight  int              `json:"panel_height" binding:"required,gt=0" example:"1220"`
	MinWasteSize int              `json:"min_waste_size" example:"100"`
	EdgeAligned  bool             `json:"edge_aligned" example:"false"`
	Pieces       []PieceTypeInput `json:"pieces" binding:"required,dive"`

	// ProjectID persists the run against an existing project when set.
	ProjectID int `json:"project_id,omitempty" example:"1"`
}

// PlacementOutput is the JSON shape of one committed placement.
type PlacementOutput struct {
	X          int    `json:"x" example:"0"`
	Y          int    `json:"y" example:"0"`
	Width      int    `json:"width" example:"600"`
	Height     int    `json:"height" example:"400"`
	PieceID    int    `json:"piece_id" example:"0"`
	TypeID     int    `json:"type_id" example:"0"`
	Rotated    bool   `json:"rotated" example:"false"`
	PanelIndex int    `json:"panel_index" example:"0"`
}

// FreeRectOutput is the JSON shape of one surviving free rectangle.
type FreeRectOutput struct {
	X, Y int
	W, H int
}

// PanelOutput is the JSON shape of one finished panel.
type PanelOutput struct {
	PanelIndex int               `json:"panel_index" example:"0"`
	Width      int               `json:"width" example:"2440"`
	Height     int               `json:"height" example:"1220"`
	Placements []PlacementOutput `json:"placements"`
	FreeRects  []FreeRectOutput  `json:"free_rects"`
}

// RejectedPieceOutput is the JSON shape of one piece that could not be
// placed anywhere within the panel cap.
type RejectedPieceOutput struct {
	PieceID int `json:"piece_id" example:"12"`
	TypeID  int `json:"type_id" example:"0"`
	Width   int `json:"width" example:"600"`
	Height  int `json:"height" example:"400"`
}

// StatsOutput is the JSON shape of the aggregate run statistics.
type StatsOutput struct {
	PanelCount      int     `json:"panel_count" example:"2"`
	TotalUsedArea   int     `json:"total_used_area" example:"2000000"`
	TotalWasteArea  int     `json:"total_waste_area" example:"400000"`
	TotalPanelArea  int     `json:"total_panel_area" example:"2400000"`
	UsedPercentage  float64 `json:"used_percentage" example:"83.3"`
	WastePercentage float64 `json:"waste_percentage" example:"16.7"`
	UsableWasteArea int     `json:"usable_waste_area" example:"150000"`
	MinWasteSize    int     `json:"min_waste_size" example:"100"`
}

// OptimizeResponse is the POST /api/optimize response body.
type OptimizeResponse struct {
	Panels   []PanelOutput         `json:"panels"`
	Rejected []RejectedPieceOutput `json:"rejected"`
	Stats    StatsOutput           `json:"stats"`

	// ResultID is set when the request carried a ProjectID and the run was
	// persisted.
	ResultID int `json:"result_id,omitempty" example:"1"`
}
