package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"cutlist-optimizer/storage"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateSession validates a bearer token's signature, expiry, and
// backing session row.
// @Summary Validate session
// @Description Validate user session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/validate-session [post]
func ValidateSession(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization header"})
			return
		}

		sessionToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if sessionToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "authorization header missing token"})
			return
		}

		parsedToken, err := utils.ValidateJWT(sessionToken)
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		exp, ok := claims["exp"].(float64)
		if !ok || time.Now().Unix() > int64(exp) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			return
		}

		user, err := storage.GetUserBySessionID(db, sessionToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "session validated",
			"session_id": sessionToken,
			"user":       user,
		})
	}
}
