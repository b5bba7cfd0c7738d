package handlers

import (
	"fmt"
	"net/http"

	"cutlist-optimizer/models"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaveStockSheetsHandler scans the latest optimization result for free
// rectangles at least as large as the project's MinWasteSize on both axes
// and saves each one as a named StockSheet, so it can be drawn on for a
// future project instead of being discarded as waste.
// @Summary      Save reusable off-cuts from the latest optimization result
// @Tags         stock
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      201 {array} models.StockSheet
// @Router       /api/projects/{id}/offcuts [post]
func SaveStockSheetsHandler(gdb *gorm.DB) gin.HandlerFunc {
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

		var latest models.OptimizationResult
		if err := gdb.Where("project_id = ?", projectID).Order("created_at desc").First(&latest).Error; err != nil {
			utils.ErrorResponse(c, "no optimization result found for this project", http.StatusNotFound)
			return
		}

		minSize := project.MinWasteSize
		if minSize <= 0 {
			minSize = 100
		}

		var sheets []models.StockSheet
		for _, panel := range resp.Panels {
			for _, fr := range panel.FreeRects {
				if fr.W < minSize || fr.H < minSize {
					continue
				}
				sheets = append(sheets, models.StockSheet{
					ProjectID:  projectID,
					ResultID:   latest.ID,
					Name:       fmt.Sprintf("Panel %d off-cut %dx%d", panel.PanelIndex+1, fr.W, fr.H),
					Width:      fr.W,
					Height:     fr.H,
					PanelIndex: panel.PanelIndex,
				})
			}
		}

		if len(sheets) > 0 {
			if err := gdb.Create(&sheets).Error; err != nil {
				utils.ErrorResponse(c, "failed to save off-cuts: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		c.JSON(http.StatusCreated, sheets)
	}
}

// ListStockSheetsHandler lists the reusable off-cuts saved for a project.
// @Summary      List reusable off-cuts for a project
// @Tags         stock
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {array} models.StockSheet
// @Router       /api/projects/{id}/offcuts [get]
func ListStockSheetsHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		var sheets []models.StockSheet
		if err := gdb.Where("project_id = ?", projectID).Order("created_at desc").Find(&sheets).Error; err != nil {
			utils.ErrorResponse(c, "failed to list off-cuts: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, sheets)
	}
}
