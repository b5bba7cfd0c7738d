package handlers

import (
	"net/http"
	"strconv"

	"cutlist-optimizer/models"
	"cutlist-optimizer/repository"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam parses a numeric URL path parameter into an int.
func parseIDParam(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// CreateProjectHandler creates a new project owned by the user_id given in
// the request body.
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body models.Project true "Project"
// @Success      201 {object} models.Project
// @Router       /api/projects [post]
func CreateProjectHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var project models.Project
		if err := c.ShouldBindJSON(&project); err != nil {
			utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if project.MinWasteSize <= 0 {
			project.MinWasteSize = 100
		}

		if err := gdb.Create(&project).Error; err != nil {
			utils.ErrorResponse(c, "failed to create project: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

// ListProjectsHandler lists every project belonging to a user, optionally
// filtered to favorites.
// @Summary      List projects for a user
// @Tags         projects
// @Produce      json
// @Param        user_id query int true "User ID"
// @Param        favorites_only query bool false "Only return favorites"
// @Success      200 {array} models.Project
// @Router       /api/projects [get]
func ListProjectsHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil {
			utils.ErrorResponse(c, "user_id is required", http.StatusBadRequest)
			return
		}

		query := gdb.Where("user_id = ?", userID)
		if c.Query("favorites_only") == "true" {
			query = query.Where("is_favorite = ?", true)
		}

		var projects []models.Project
		if err := query.Order("updated_at desc").Find(&projects).Error; err != nil {
			utils.ErrorResponse(c, "failed to list projects: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// GetProjectHandler returns one project with its pieces.
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} models.Project
// @Failure      404 {object} object
// @Router       /api/projects/{id} [get]
func GetProjectHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		var project models.Project
		if err := gdb.Preload("Pieces").First(&project, id).Error; err != nil {
			utils.ErrorResponse(c, "project not found", http.StatusNotFound)
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// UpdateProjectHandler updates a project's editable fields: name,
// description, panel size, waste threshold, poignet mode, favorite flag,
// and tags.
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        request body models.Project true "Project fields to update"
// @Success      200 {object} models.Project
// @Router       /api/projects/{id} [put]
func UpdateProjectHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		var updates models.Project
		if err := c.ShouldBindJSON(&updates); err != nil {
			utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}

		result := gdb.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":            updates.Name,
			"description":     updates.Description,
			"panel_width":     updates.PanelWidth,
			"panel_height":    updates.PanelHeight,
			"min_waste_size":  updates.MinWasteSize,
			"poignet_enabled": updates.PoignetEnabled,
			"is_favorite":     updates.IsFavorite,
			"tags":            updates.Tags,
		})
		if result.Error != nil {
			utils.ErrorResponse(c, "failed to update project: "+result.Error.Error(), http.StatusInternalServerError)
			return
		}
		if result.RowsAffected == 0 {
			utils.ErrorResponse(c, "project not found", http.StatusNotFound)
			return
		}

		var project models.Project
		gdb.First(&project, id)
		c.JSON(http.StatusOK, project)
	}
}

// DeleteProjectHandler deletes a project and its pieces.
// @Summary      Delete a project
// @Tags         projects
// @Param        id path int true "Project ID"
// @Success      200 {object} object
// @Router       /api/projects/{id} [delete]
func DeleteProjectHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		if err := gdb.Where("project_id = ?", id).Delete(&models.ProjectPiece{}).Error; err != nil {
			utils.ErrorResponse(c, "failed to delete pieces: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if err := gdb.Delete(&models.Project{}, id).Error; err != nil {
			utils.ErrorResponse(c, "failed to delete project: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
	}
}

// ShareProjectHandler generates a short, human-typeable share code for an
// existing project and returns it together with the project's id. The code
// is not stored, and no route resolves a share code back to its project.
// @Summary      Generate a share code for a project
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} object
// @Router       /api/projects/{id}/share [post]
func ShareProjectHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		var project models.Project
		if err := gdb.First(&project, id).Error; err != nil {
			utils.ErrorResponse(c, "project not found", http.StatusNotFound)
			return
		}

		code := repository.GenerateRandomCode()
		c.JSON(http.StatusOK, gin.H{"share_code": code, "project_id": project.ID})
	}
}

// AddProjectPieceHandler adds one demand line to a project.
// @Summary      Add a piece to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        request body models.ProjectPiece true "Piece"
// @Success      201 {object} models.ProjectPiece
// @Router       /api/projects/{id}/pieces [post]
func AddProjectPieceHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := parseIDParam(c, "id")
		if err != nil {
			utils.ErrorResponse(c, "invalid project id", http.StatusBadRequest)
			return
		}

		var piece models.ProjectPiece
		if err := c.ShouldBindJSON(&piece); err != nil {
			utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}
		piece.ProjectID = projectID

		if err := gdb.Create(&piece).Error; err != nil {
			utils.ErrorResponse(c, "failed to add piece: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusCreated, piece)
	}
}

// DeleteProjectPieceHandler removes one demand line from a project.
// @Summary      Delete a piece from a project
// @Tags         projects
// @Param        id path int true "Project ID"
// @Param        piece_id path int true "Piece ID"
// @Success      200 {object} object
// @Router       /api/projects/{id}/pieces/{piece_id} [delete]
func DeleteProjectPieceHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pieceID, err := parseIDParam(c, "piece_id")
		if err != nil {
			utils.ErrorResponse(c, "invalid piece id", http.StatusBadRequest)
			return
		}

		if err := gdb.Delete(&models.ProjectPiece{}, pieceID).Error; err != nil {
			utils.ErrorResponse(c, "failed to delete piece: "+err.Error(), http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "piece deleted"})
	}
}
