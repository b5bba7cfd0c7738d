package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cutlist-optimizer/models"
	"cutlist-optimizer/storage"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LoginHandler authenticates a user and returns an access/refresh token
// pair, or re-validates an already-present bearer token.
// @Summary Login user
// @Description Authenticate user and return session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body object true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/login [post]
func LoginHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))

		if token != "" {
			if parsedToken, err := utils.ValidateJWT(token); err == nil && parsedToken.Valid {
				claims, ok := parsedToken.Claims.(jwt.MapClaims)
				if !ok {
					c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims structure"})
					return
				}
				email, _ := claims["email"].(string)
				if email == "" {
					c.JSON(http.StatusUnauthorized, gin.H{"error": "email claim missing or invalid"})
					return
				}
				user, err := storage.GetUserByEmail(db, email)
				if err != nil {
					c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
					return
				}
				c.JSON(http.StatusOK, gin.H{
					"message":      "user successfully logged in via token",
					"access_token": token,
					"user":         gin.H{"id": user.ID, "email": user.Email},
				})
				return
			}
			// Token invalid or expired: fall through to email/password login.
		}

		var loginData struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
			IP       string `json:"ip"`
		}
		if err := c.ShouldBindJSON(&loginData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}

		user, err := storage.GetUserByEmail(db, loginData.Email)
		if err != nil || !utils.ValidatePassword(user.Password, loginData.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		const maxSessions = 3
		sessionCount, err := storage.GetUserSessionCount(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check active sessions", "details": err.Error()})
			return
		}
		if sessionCount >= maxSessions {
			devices, err := storage.GetActiveDevices(db, user.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get active devices", "details": err.Error()})
				return
			}
			c.JSON(http.StatusConflict, gin.H{
				"error":           "maximum device limit reached",
				"max_devices":     maxSessions,
				"current_devices": sessionCount,
				"active_devices":  devices,
				"requires_logout": true,
			})
			return
		}

		newToken, err := utils.GenerateJWT(user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}
		refreshToken, err := utils.GenerateRefreshToken(user.Email, newToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate refresh token"})
			return
		}

		session := &models.Session{
			UserID:                user.ID,
			SessionID:             newToken,
			HostName:              user.Email,
			IPAddress:             loginData.IP,
			Timestamp:             time.Now(),
			ExpiresAt:             time.Now().Add(15 * time.Minute),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresAt: time.Now().Add(15 * 24 * time.Hour),
		}

		if err := storage.SaveSession(db, session, true); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "login successful",
			"access_token":  newToken,
			"refresh_token": refreshToken,
			"expires_in":    900,
		})
	}
}

// GetSessionHandler returns the user associated with a bearer token.
func GetSessionHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" {
			utils.ErrorResponse(c, "no token provided", http.StatusUnauthorized)
			return
		}

		parsedToken, err := utils.ValidateJWT(token)
		if err != nil {
			utils.ErrorResponse(c, "invalid token", http.StatusUnauthorized)
			return
		}

		claims := parsedToken.Claims.(jwt.MapClaims)
		exp, ok := claims["exp"].(float64)
		if !ok || time.Now().Unix() > int64(exp) {
			utils.ErrorResponse(c, "token expired", http.StatusUnauthorized)
			return
		}

		email, ok := claims["email"].(string)
		if !ok {
			utils.ErrorResponse(c, "invalid token claims", http.StatusUnauthorized)
			return
		}

		user, err := storage.GetUserByEmail(db, email)
		if err != nil {
			utils.ErrorResponse(c, "user not found", http.StatusUnauthorized)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "user is logged in", "user": user})
	}
}

// DeleteSessionHandler deletes every session for a user (force logout).
func DeleteSessionHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDInt, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		if err := storage.DeleteSession(db, userIDInt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "session deleted, user logged out"})
	}
}

// GetActiveDevicesHandler lists every active device/session for the
// authenticated user.
func GetActiveDevicesHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if sessionToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization header"})
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
		email, _ := claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email claim missing or invalid"})
			return
		}

		user, err := storage.GetUserByEmail(db, email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		devices, err := storage.GetActiveDevices(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get active devices", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"active_devices": devices,
			"device_count":   len(devices),
		})
	}
}

// LogoutDeviceHandler logs out a specific device by session_id.
func LogoutDeviceHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requestData struct {
			SessionID string `json:"session_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&requestData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		var sessionUserID int
		err := db.QueryRow("SELECT user_id FROM session WHERE session_id = $1", requestData.SessionID).Scan(&sessionUserID)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify session", "details": err.Error()})
			return
		}

		if err := storage.DeleteSessionByID(db, requestData.SessionID, sessionUserID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout device", "details": err.Error()})
			return
		}
		_ = storage.DeleteRefreshToken(db, requestData.SessionID)

		c.JSON(http.StatusOK, gin.H{
			"message":    "device logged out successfully",
			"session_id": requestData.SessionID,
		})
	}
}

// RefreshTokenHandler exchanges a valid refresh token for a new access
// token, rotating the refresh token itself only when it is close to
// expiry.
func RefreshTokenHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var refreshRequest struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&refreshRequest); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
			return
		}

		parsedToken, err := utils.ValidateJWT(refreshRequest.RefreshToken)
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims structure"})
			return
		}
		if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token type"})
			return
		}
		email, ok := claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email claim missing or invalid"})
			return
		}

		user, err := storage.GetUserByEmail(db, email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		var existingSessionID string
		var refreshTokenExpiresAt time.Time
		err = db.QueryRow(`
			SELECT session_id, refresh_token_expires_at FROM session
			WHERE refresh_token = $1 AND user_id = $2 AND refresh_token_expires_at > NOW()`,
			refreshRequest.RefreshToken, user.ID).Scan(&existingSessionID, &refreshTokenExpiresAt)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found, expired, or refresh token mismatch"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify session", "details": err.Error()})
			}
			return
		}

		newAccessToken, err := utils.GenerateJWT(user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate access token"})
			return
		}

		refreshTokenExpiresSoon := refreshTokenExpiresAt.Sub(time.Now()) < 24*time.Hour
		newRefreshToken := refreshRequest.RefreshToken
		newRefreshTokenExpiresAt := refreshTokenExpiresAt

		if refreshTokenExpiresSoon {
			newRefreshToken, err = utils.GenerateRefreshToken(user.Email, newAccessToken)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate refresh token"})
				return
			}
			newRefreshTokenExpiresAt = time.Now().Add(15 * 24 * time.Hour)
		}

		var result sql.Result
		if refreshTokenExpiresSoon {
			result, err = db.Exec(`
				UPDATE session
				SET session_id = $1, expires_at = $2, timestp = $3, refresh_token = $4, refresh_token_expires_at = $5
				WHERE refresh_token = $6 AND user_id = $7`,
				newAccessToken, time.Now().Add(15*time.Minute), time.Now(), newRefreshToken, newRefreshTokenExpiresAt, refreshRequest.RefreshToken, user.ID)
		} else {
			result, err = db.Exec(`
				UPDATE session
				SET session_id = $1, expires_at = $2, timestp = $3
				WHERE refresh_token = $4 AND user_id = $5`,
				newAccessToken, time.Now().Add(15*time.Minute), time.Now(), refreshRequest.RefreshToken, user.ID)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update session", "details": err.Error()})
			return
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session update failed - no matching session found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "token refreshed successfully",
			"access_token":  newAccessToken,
			"refresh_token": newRefreshToken,
			"expires_in":    900,
		})
	}
}
