package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"

	"cutlist-optimizer/models"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
	"gorm.io/gorm"
)

// labelInfo is what gets encoded into a piece's QR code: enough to identify
// it and its panel without a database round trip at the saw.
type labelInfo struct {
	PieceID    int  `json:"piece_id"`
	TypeID     int  `json:"type_id"`
	PanelIndex int  `json:"panel"`
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Rotated    bool `json:"rotated"`
}

func addLabelText(img *image.RGBA, x, y int, label string, bold bool) {
	col := color.RGBA{20, 20, 20, 255}
	face := inconsolata.Regular8x16
	if bold {
		face = inconsolata.Bold8x16
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(label)
}

// renderPieceLabel builds one combined QR-code-plus-text JPEG label for a
// placed piece.
func renderPieceLabel(info labelInfo) ([]byte, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qr, err := qrcode.New(string(data), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to build QR code: %w", err)
	}
	qrImg := qr.Image(256)

	qrSize := qrImg.Bounds().Dy()
	padding := 16
	lineHeight := 20
	textAreaHeight := 3*lineHeight + padding
	totalHeight := qrSize + padding + textAreaHeight

	combined := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
	draw.Draw(combined, combined.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(combined, image.Rect(0, 0, qrSize, qrSize), qrImg, image.Point{}, draw.Src)

	startY := qrSize + padding + lineHeight
	x := 10

	addLabelText(combined, x, startY, fmt.Sprintf("Piece #%d", info.PieceID), true)
	addLabelText(combined, x, startY+lineHeight, fmt.Sprintf("%dx%d", info.Width, info.Height), false)
	panelLine := fmt.Sprintf("Panel %d", info.PanelIndex+1)
	if info.Rotated {
		panelLine += " (rotated)"
	}
	addLabelText(combined, x, startY+2*lineHeight, panelLine, false)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, combined, nil); err != nil {
		return nil, fmt.Errorf("failed to encode label JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportLabelsHandler returns a single QR-coded JPEG label for one placed
// piece in the project's latest optimization result. The `piece_id` query
// parameter selects the piece; otherwise the first placed piece is used.
// @Summary      Get a printable QR label for a placed piece
// @Tags         export
// @Produce      image/jpeg
// @Param        id path int true "Project ID"
// @Param        piece_id query int false "Piece ID to label"
// @Success      200  {file}  file  "JPEG label"
// @Router       /api/projects/{id}/labels [get]
func ExportLabelsHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		_, resp, err := loadLatestResult(gdb, projectID)
		if err != nil {
			utils.ErrorResponse(c, err.Error(), http.StatusNotFound)
			return
		}

		var target *models.PlacementOutput
		var panelIndex int
		wantPieceID := c.Query("piece_id")

		for _, panel := range resp.Panels {
			for i := range panel.Placements {
				pl := &panel.Placements[i]
				if wantPieceID == "" {
					target = pl
					panelIndex = panel.PanelIndex
					break
				}
				if fmt.Sprintf("%d", pl.PieceID) == wantPieceID {
					target = pl
					panelIndex = panel.PanelIndex
					break
				}
			}
			if target != nil {
				break
			}
		}

		if target == nil {
			utils.ErrorResponse(c, "piece not found in the latest optimization result", http.StatusNotFound)
			return
		}

		jpegBytes, err := renderPieceLabel(labelInfo{
			PieceID:    target.PieceID,
			TypeID:     target.TypeID,
			PanelIndex: panelIndex,
			Width:      target.Width,
			Height:     target.Height,
			Rotated:    target.Rotated,
		})
		if err != nil {
			utils.ErrorResponse(c, err.Error(), http.StatusInternalServerError)
			return
		}

		c.Data(http.StatusOK, "image/jpeg", jpegBytes)
	}
}
