package handlers

import (
	"fmt"
	"net/http"

	"cutlist-optimizer/models"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var titleCaser = cases.Title(language.Und)

// ExportPDFHandler renders the latest optimization result for a project as
// a printable cut sheet: one scaled diagram per panel plus a summary page.
// @Summary      Export a project's latest optimization as a PDF cut sheet
// @Tags         export
// @Produce      application/pdf
// @Param        id path int true "Project ID"
// @Success      200  {file}  file  "PDF file"
// @Router       /api/projects/{id}/export/pdf [get]
func ExportPDFHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		project, resp, err := loadLatestResult(gdb, projectID)
		if err != nil {
			utils.ErrorResponse(c, err.Error(), http.StatusNotFound)
			return
		}

		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)

		pdf.AddPage()
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(270, 10, "Cutting Layout Report")
		pdf.Ln(14)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(60, 8, "Project")
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, titleCaser.String(project.Name))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(60, 8, "Panels used")
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, fmt.Sprintf("%d", resp.Stats.PanelCount))
		pdf.Ln(8)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(60, 8, "Used / waste")
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, fmt.Sprintf("%.1f%% / %.1f%%", resp.Stats.UsedPercentage, resp.Stats.WastePercentage))
		pdf.Ln(8)

		if len(resp.Rejected) > 0 {
			pdf.SetFont("Arial", "B", 12)
			pdf.SetTextColor(180, 0, 0)
			pdf.Cell(100, 8, fmt.Sprintf("%d piece(s) could not be placed", len(resp.Rejected)))
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(8)
		}

		for _, panel := range resp.Panels {
			pdf.AddPage()
			pdf.SetFont("Arial", "B", 14)
			pdf.Cell(270, 10, fmt.Sprintf("Panel %d (%dx%d)", panel.PanelIndex+1, panel.Width, panel.Height))
			pdf.Ln(12)

			drawPanelDiagram(pdf, panel.Width, panel.Height, panel.Placements)
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project-%d-cutsheet.pdf", projectID))
		c.Header("Content-Type", "application/pdf")
		if err := pdf.Output(c.Writer); err != nil {
			utils.ErrorResponse(c, "failed to write PDF: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

// drawPanelDiagram draws a to-scale rectangle for the panel and one filled
// rectangle per placement, fit within the usable page area starting at the
// current cursor position.
func drawPanelDiagram(pdf *gofpdf.Fpdf, panelW, panelH int, placements []models.PlacementOutput) {
	const maxW, maxH = 270.0, 160.0

	scale := maxW / float64(panelW)
	if h := float64(panelH) * scale; h > maxH {
		scale = maxH / float64(panelH)
	}

	x0, y0 := pdf.GetX(), pdf.GetY()

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(x0, y0, float64(panelW)*scale, float64(panelH)*scale, "D")

	pdf.SetFont("Arial", "", 7)
	for _, pl := range placements {
		rx := x0 + float64(pl.X)*scale
		ry := y0 + float64(panelH-pl.Y-pl.Height)*scale
		rw := float64(pl.Width) * scale
		rh := float64(pl.Height) * scale

		pdf.SetFillColor(210, 225, 240)
		pdf.Rect(rx, ry, rw, rh, "FD")

		label := fmt.Sprintf("#%d", pl.PieceID)
		if pl.Rotated {
			label += " R"
		}
		pdf.SetXY(rx+1, ry+1)
		pdf.CellFormat(rw-2, 4, label, "", 0, "L", false, 0, "")
	}
}
