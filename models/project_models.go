package models

import (
	"time"

	"github.com/lib/pq"
)

// Project is a saved cutting job: a panel size, a set of pieces to cut
// from it, and the placement settings to run them through. Scoped to the
// owning user.
type Project struct {
	ID             int            `json:"id" gorm:"primaryKey" example:"1"`
	UserID         int            `json:"user_id" gorm:"index;not null" example:"1"`
	Name           string         `json:"name" gorm:"not null" example:"Kitchen cabinets"`
	Description    string         `json:"description" example:"Carcass panels for run 2"`
	PanelWidth     int            `json:"panel_width" gorm:"not null" example:"2440"`
	PanelHeight    int            `json:"panel_height" gorm:"not null" example:"1220"`
	MinWasteSize   int            `json:"min_waste_size" gorm:"default:100" example:"100"`
	PoignetEnabled bool           `json:"poignet_enabled" example:"false"`
	IsFavorite     bool           `json:"is_favorite" gorm:"index" example:"false"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[]" example:"kitchen,oak"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Pieces []ProjectPiece `json:"pieces,omitempty" gorm:"foreignKey:ProjectID"`
}

// ProjectPiece is one line of demand belonging to a Project: the piece
// size, quantity, rotation policy, and the order it should be listed in.
type ProjectPiece struct {
	ID              int  `json:"id" gorm:"primaryKey" example:"1"`
	ProjectID       int  `json:"project_id" gorm:"index;not null" example:"1"`
	PieceTypeID     int  `json:"piece_type_id" gorm:"not null" example:"0"`
	Width           int  `json:"width" gorm:"not null" example:"600"`
	Height          int  `json:"height" gorm:"not null" example:"400"`
	Quantity        int  `json:"quantity" gorm:"not null" example:"4"`
	RotationAllowed bool `json:"rotation_allowed" example:"true"`
	DisplayOrder    int  `json:"display_order" example:"0"`
}

// OptimizationResult is the persisted outcome of one Optimize run against a
// Project: its summary statistics plus the full placement data, serialized
// as JSON in ResultData so historical runs can be replayed in the UI
// without re-running the engine.
type OptimizationResult struct {
	ID              int       `json:"id" gorm:"primaryKey" example:"1"`
	ProjectID       int       `json:"project_id" gorm:"index;not null" example:"1"`
	PanelCount      int       `json:"panel_count" example:"2"`
	TotalUsedArea   int       `json:"total_used_area" example:"2000000"`
	TotalWasteArea  int       `json:"total_waste_area" example:"400000"`
	UsedPercentage  float64   `json:"used_percentage" example:"83.3"`
	WastePercentage float64   `json:"waste_percentage" example:"16.7"`
	UsableWasteArea int       `json:"usable_waste_area" example:"150000"`
	ResultData      string    `json:"result_data" gorm:"type:jsonb"`
	CreatedAt       time.Time `json:"created_at"`
}

// StockSheet is a named off-cut: a leftover free rectangle from a past
// optimization run that is large enough (per the owning project's
// MinWasteSize) to be worth keeping as reusable stock for a future project,
// instead of being thrown away with the rest of the panel's waste.
type StockSheet struct {
	ID         int       `json:"id" gorm:"primaryKey" example:"1"`
	ProjectID  int       `json:"project_id" gorm:"index;not null" example:"1"`
	ResultID   int       `json:"result_id" gorm:"not null" example:"1"`
	Name       string    `json:"name" example:"Oak off-cut"`
	Width      int       `json:"width" gorm:"not null" example:"600"`
	Height     int       `json:"height" gorm:"not null" example:"300"`
	PanelIndex int       `json:"panel_index" example:"0"`
	CreatedAt  time.Time `json:"created_at"`
}
