package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cutlist-optimizer/models"
	"cutlist-optimizer/packer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOptimizeResponseCarriesStatsAndPlacements(t *testing.T) {
	settings := packer.NewSettings(50, false)
	types := []packer.PieceType{
		{TypeID: 1, W: 600, H: 400, Quantity: 2, RotationAllowed: true},
	}
	result := packer.Optimize(1200, 800, types, settings)

	resp := toOptimizeResponse(result)

	assert.Equal(t, result.Stats.PanelCount, resp.Stats.PanelCount)
	assert.Equal(t, len(result.Panels), len(resp.Panels))
	assert.Equal(t, len(result.Rejected), len(resp.Rejected))
	if len(result.Panels) > 0 {
		assert.Equal(t, len(result.Panels[0].Placements), len(resp.Panels[0].Placements))
		assert.Equal(t, len(result.Panels[0].FreeRects), len(resp.Panels[0].FreeRects))
	}
}

func TestOptimizeHandlerWithoutProjectIDSkipsPersistence(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/optimize", OptimizeHandler(nil, nil))

	body := models.OptimizeRequest{
		PanelWidth:  1200,
		PanelHeight: 800,
		Pieces: []models.PieceTypeInput{
			{TypeID: 1, Width: 600, Height: 400, Quantity: 2, RotationAllowed: true},
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.OptimizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.ResultID)
	assert.NotEmpty(t, resp.Panels)
}

func TestOptimizeHandlerRejectsInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/optimize", OptimizeHandler(nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
