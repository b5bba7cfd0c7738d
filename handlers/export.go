package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cutlist-optimizer/models"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// loadLatestResult fetches a project and its most recent optimization
// result, decoding the stored layout back into a models.OptimizeResponse.
func loadLatestResult(gdb *gorm.DB, projectID int) (*models.Project, *models.OptimizeResponse, error) {
	var project models.Project
	if err := gdb.First(&project, projectID).Error; err != nil {
		return nil, nil, fmt.Errorf("project not found: %w", err)
	}

	var stored models.OptimizationResult
	if err := gdb.Where("project_id = ?", projectID).Order("created_at desc").First(&stored).Error; err != nil {
		return nil, nil, fmt.Errorf("no optimization result found for this project: %w", err)
	}

	var resp models.OptimizeResponse
	if err := json.Unmarshal([]byte(stored.ResultData), &resp); err != nil {
		return nil, nil, fmt.Errorf("failed to decode stored result: %w", err)
	}

	return &project, &resp, nil
}

// ExportXLSXHandler writes the latest optimization result for a project as
// a workbook: one summary sheet plus, per cut panel, a placement sheet and
// an off-cut sheet listing the panel's surviving free rectangles.
// @Summary      Export a project's latest optimization as XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path int true "Project ID"
// @Success      200  {file}  file  "XLSX file"
// @Router       /api/projects/{id}/export/xlsx [get]
func ExportXLSXHandler(gdb *gorm.DB) gin.HandlerFunc {
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

		f := excelize.NewFile()
		defer f.Close()

		const summarySheet = "Summary"
		f.SetSheetName("Sheet1", summarySheet)
		f.SetCellValue(summarySheet, "A1", "Cutting Layout Summary")
		f.SetCellValue(summarySheet, "A2", "Project")
		f.SetCellValue(summarySheet, "B2", project.Name)
		f.SetCellValue(summarySheet, "A3", "Panel Count")
		f.SetCellValue(summarySheet, "B3", resp.Stats.PanelCount)
		f.SetCellValue(summarySheet, "A4", "Used Area")
		f.SetCellValue(summarySheet, "B4", resp.Stats.TotalUsedArea)
		f.SetCellValue(summarySheet, "A5", "Waste Area")
		f.SetCellValue(summarySheet, "B5", resp.Stats.TotalWasteArea)
		f.SetCellValue(summarySheet, "A6", "Used %")
		f.SetCellValue(summarySheet, "B6", resp.Stats.UsedPercentage)
		f.SetCellValue(summarySheet, "A7", "Rejected Pieces")
		f.SetCellValue(summarySheet, "B7", len(resp.Rejected))
		f.SetColWidth(summarySheet, "A", "A", 18)

		for _, panel := range resp.Panels {
			sheetName := fmt.Sprintf("Panel %d", panel.PanelIndex+1)
			if _, err := f.NewSheet(sheetName); err != nil {
				utils.ErrorResponse(c, "failed to build workbook: "+err.Error(), http.StatusInternalServerError)
				return
			}

			header := []string{"Piece", "Type", "X", "Y", "Width", "Height", "Rotated"}
			for col, title := range header {
				cell, _ := excelize.CoordinatesToCellName(col+1, 1)
				f.SetCellValue(sheetName, cell, title)
			}

			for row, pl := range panel.Placements {
				values := []interface{}{pl.PieceID, pl.TypeID, pl.X, pl.Y, pl.Width, pl.Height, pl.Rotated}
				for col, v := range values {
					cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
					f.SetCellValue(sheetName, cell, v)
				}
			}

			offcutSheet := fmt.Sprintf("Panel %d off-cuts", panel.PanelIndex+1)
			if _, err := f.NewSheet(offcutSheet); err != nil {
				utils.ErrorResponse(c, "failed to build workbook: "+err.Error(), http.StatusInternalServerError)
				return
			}
			offcutHeader := []string{"X", "Y", "Width", "Height"}
			for col, title := range offcutHeader {
				cell, _ := excelize.CoordinatesToCellName(col+1, 1)
				f.SetCellValue(offcutSheet, cell, title)
			}
			for row, fr := range panel.FreeRects {
				values := []interface{}{fr.X, fr.Y, fr.W, fr.H}
				for col, v := range values {
					cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
					f.SetCellValue(offcutSheet, cell, v)
				}
			}
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project-%d-layout.xlsx", projectID))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			utils.ErrorResponse(c, "failed to write workbook: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}
}
