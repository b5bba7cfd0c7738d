package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"cutlist-optimizer/services"
	"cutlist-optimizer/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ForgetPasswordHandler issues a one-time reset token and emails a reset
// link to the account's address.
// @Summary      Forgot password
// @Description  Request password reset link by email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "{\"email\":\"user@example.com\"}"
// @Success      200   {object}  object
// @Failure      400   {object}  object
// @Failure      404   {object}  object
// @Router       /api/auth/forgot-password [post]
func ForgetPasswordHandler(db *sql.DB, email *services.EmailService, frontendBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		type Request struct {
			Email string `json:"email" binding:"required,email"`
		}
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}

		var userID int
		err := db.QueryRow("SELECT id FROM users WHERE email=$1", req.Email).Scan(&userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "email not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		token := uuid.New().String()
		expiry := time.Now().Add(15 * time.Minute)

		if _, err := db.Exec(`UPDATE users SET reset_token=$1, reset_token_expiry=$2 WHERE id=$3`, token, expiry, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save token"})
			return
		}

		resetLink := fmt.Sprintf("%s%s", frontendBaseURL, token)
		body := fmt.Sprintf("<p>Click the link below to reset your password:</p><p>%s</p><p>This link expires in 15 minutes.</p>", resetLink)

		if err := email.SendHTML(req.Email, "Reset your password", body); err != nil {
			log.Printf("failed to send reset email: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send reset email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "reset link sent to email"})
	}
}

// ResetPasswordHandler godoc
// @Summary      Reset password with token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token   path      string  true  "Reset token"
// @Param        body    body      object  true  "{\"new_password\":\"newpassword\"}"
// @Success      200     {object}  object
// @Failure      400     {object}  object
// @Router       /api/auth/reset-password/{token} [post]
func ResetPasswordHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
			return
		}

		type Request struct {
			NewPassword string `json:"new_password" binding:"required,min=6"`
		}
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password format"})
			return
		}

		var userID int
		var expiry time.Time
		err := db.QueryRow(`SELECT id, reset_token_expiry FROM users WHERE reset_token=$1`, token).
			Scan(&userID, &expiry)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		if time.Now().After(expiry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token has expired"})
			return
		}

		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		if _, err := db.Exec(`UPDATE users SET password=$1, reset_token=NULL, reset_token_expiry=NULL WHERE id=$2`, hashed, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "password reset successful"})
	}
}

// ChangePasswordHandler godoc
// @Summary      Change password (authenticated user)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "old_password, new_password"
// @Success      200  {object}  object
// @Failure      400  {object}  object
// @Failure      401  {object}  object
// @Router       /api/change_password [post]
func ChangePasswordHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		type Request struct {
			OldPassword string `json:"old_password" binding:"required"`
			NewPassword string `json:"new_password" binding:"required,min=6"`
		}
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}

		sessionID := c.GetHeader("Authorization")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token (session_id) required"})
			return
		}

		var userID int
		err := db.QueryRow(`SELECT user_id FROM session WHERE session_id = $1`, sessionID).Scan(&userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var currentHash string
		err = db.QueryRow(`SELECT password FROM users WHERE id = $1`, userID).Scan(&currentHash)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		if !utils.ValidatePassword(currentHash, req.OldPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "old password is incorrect"})
			return
		}

		newHash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		if _, err := db.Exec(`UPDATE users SET password = $1 WHERE id = $2`, newHash, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
	}
}
