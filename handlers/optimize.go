package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"cutlist-optimizer/models"
	"cutlist-optimizer/packer"
	"cutlist-optimizer/services"
	"cutlist-optimizer/storage"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler runs the cutting-layout engine over the posted panel
// size and piece demand. When the request names a project_id it persists
// the run and fires the "optimization ready" notification.
// @Summary      Run the cutting-layout optimizer
// @Description  Pack the given pieces onto panels of the given size and return the layout
// @Tags         optimize
// @Accept       json
// @Produce      json
// @Param        request body models.OptimizeRequest true "Optimize request"
// @Success      200 {object} models.OptimizeResponse
// @Failure      400 {object} object
// @Router       /api/optimize [post]
func OptimizeHandler(db *sql.DB, fcm *services.FCMService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.OptimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}

		types := make([]packer.PieceType, len(req.Pieces))
		for i, p := range req.Pieces {
			types[i] = packer.PieceType{
				TypeID:          p.TypeID,
				W:               p.Width,
				H:               p.Height,
				Quantity:        p.Quantity,
				RotationAllowed: p.RotationAllowed,
			}
		}

		settings := packer.NewSettings(req.MinWasteSize, req.EdgeAligned)
		result := packer.Optimize(req.PanelWidth, req.PanelHeight, types, settings)
		resp := toOptimizeResponse(result)

		if req.ProjectID > 0 {
			resultID, err := storage.SaveOptimizationResult(db, req.ProjectID, resp.Stats, resp)
			if err != nil {
				utils.ErrorResponse(c, "failed to persist optimization result: "+err.Error(), http.StatusInternalServerError)
				return
			}
			resp.ResultID = resultID

			if fcm != nil {
				var userID int
				var name string
				if err := db.QueryRow("SELECT user_id, name FROM projects WHERE id = $1", req.ProjectID).Scan(&userID, &name); err == nil {
					ctx, cancel := utils.GetFastQueryContext(context.Background())
					go func() {
						defer cancel()
						fcm.NotifyOptimizationReady(ctx, userID, name, resp.Stats.PanelCount)
					}()
				}
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetOptimizationHistoryHandler lists persisted runs for a project.
// @Summary      List optimization history for a project
// @Tags         optimize
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {array} models.OptimizationResult
// @Router       /api/projects/{id}/results [get]
func GetOptimizationHistoryHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		results, err := storage.GetOptimizationResultsForProject(db, projectID)
		if err != nil {
			utils.ErrorResponse(c, "failed to load results: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, results)
	}
}

func toOptimizeResponse(result packer.Result) models.OptimizeResponse {
	panels := make([]models.PanelOutput, len(result.Panels))
	for i, p := range result.Panels {
		placements := make([]models.PlacementOutput, len(p.Placements))
		for j, pl := range p.Placements {
			placements[j] = models.PlacementOutput{
				X: pl.X, Y: pl.Y, Width: pl.W, Height: pl.H,
				PieceID: pl.PieceID, TypeID: pl.TypeID,
				Rotated: pl.Rotated(), PanelIndex: pl.PanelIndex,
			}
		}
		freeRects := make([]models.FreeRectOutput, len(p.FreeRects))
		for j, fr := range p.FreeRects {
			freeRects[j] = models.FreeRectOutput{X: fr.X, Y: fr.Y, W: fr.W, H: fr.H}
		}
		panels[i] = models.PanelOutput{
			PanelIndex: p.PanelIndex, Width: p.W, Height: p.H,
			Placements: placements, FreeRects: freeRects,
		}
	}

	rejected := make([]models.RejectedPieceOutput, len(result.Rejected))
	for i, r := range result.Rejected {
		rejected[i] = models.RejectedPieceOutput{PieceID: r.PieceID, TypeID: r.TypeID, Width: r.W, Height: r.H}
	}

	return models.OptimizeResponse{
		Panels:   panels,
		Rejected: rejected,
		Stats: models.StatsOutput{
			PanelCount:      result.Stats.PanelCount,
			TotalUsedArea:   result.Stats.TotalUsedArea,
			TotalWasteArea:  result.Stats.TotalWasteArea,
			TotalPanelArea:  result.Stats.TotalPanelArea,
			UsedPercentage:  result.Stats.UsedPercentage,
			WastePercentage: result.Stats.WastePercentage,
			UsableWasteArea: result.Stats.UsableWasteArea,
			MinWasteSize:    result.Stats.MinWasteSize,
		},
	}
}
