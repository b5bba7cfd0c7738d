package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"cutlist-optimizer/config"
	"cutlist-optimizer/models"
	"cutlist-optimizer/utils"

	_ "github.com/lib/pq"
)

var db *sql.DB

// InitDB opens the raw database/sql connection used for the hot-path
// session and auth queries and for optimization-result history; project
// and piece CRUD runs through the GORM connection instead.
func InitDB(cfg config.Config) *sql.DB {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBHost, cfg.DBPort)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return db
}

func GetDB() *sql.DB {
	return db
}

// SaveSession saves a new session for a user, handling multiple device
// support. If allowMultipleSessions is true, it allows multiple devices to
// be logged in simultaneously. If false, it deletes all existing sessions
// before creating a new one.
func SaveSession(db *sql.DB, session *models.Session, allowMultipleSessions bool) error {
	if !allowMultipleSessions {
		deleteAllQuery := `DELETE FROM session WHERE user_id = $1`
		if _, err := db.Exec(deleteAllQuery, session.UserID); err != nil {
			return fmt.Errorf("failed to delete all user sessions: %v", err)
		}
	}

	insertQuery := `INSERT INTO session (user_id, session_id, host_name, ip_address, timestp, expires_at, refresh_token, refresh_token_expires_at)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.Exec(insertQuery, session.UserID, session.SessionID, session.HostName, session.IPAddress, session.Timestamp, session.ExpiresAt, session.RefreshToken, session.RefreshTokenExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert new session: %v", err)
	}
	return nil
}

// DeleteRefreshToken removes a refresh token for a session (for logout).
func DeleteRefreshToken(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`UPDATE session SET refresh_token = NULL, refresh_token_expires_at = NULL WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

func DeleteSession(db *sql.DB, userID int) error {
	query := `DELETE FROM session WHERE user_id = $1`
	_, err := db.Exec(query, userID)
	return err
}

// GetUserSessionCount returns the number of active sessions for a user.
func GetUserSessionCount(db *sql.DB, userID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM session WHERE user_id = $1 AND expires_at > NOW()`
	err := db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// DeleteSessionByID deletes a specific session by session_id.
func DeleteSessionByID(db *sql.DB, sessionID string, userID int) error {
	query := `DELETE FROM session WHERE session_id = $1 AND user_id = $2`
	result, err := db.Exec(query, sessionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("session not found or already deleted")
	}

	return nil
}

// GetUserByEmail loads a user by email for the login path.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password, first_name, last_name, is_admin FROM users WHERE LOWER(email) = LOWER($1)`

	err := db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.IsAdmin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to query user: %v", err)
	}

	return &user, nil
}

// GetUserBySessionID retrieves a User by the given session ID, rejecting
// sessions that have already expired.
func GetUserBySessionID(db *sql.DB, sessionID string) (*models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.created_at, u.updated_at, u.last_access, u.is_admin
		FROM session s
		JOIN users u ON s.user_id = u.id
		WHERE s.session_id = $1 AND s.expires_at > NOW()
	`

	var user models.User
	var lastAccess sql.NullTime

	err := db.QueryRow(query, sessionID).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.CreatedAt, &user.UpdatedAt, &lastAccess, &user.IsAdmin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("user not found for the given session ID")
		}
		return nil, err
	}

	if lastAccess.Valid {
		user.LastAccess = lastAccess.Time
	}

	return &user, nil
}

// GetActiveDevices returns one row per active session for a user, shaped
// for direct JSON display in the "active devices" list.
func GetActiveDevices(db *sql.DB, userID int) ([]map[string]interface{}, error) {
	query := `SELECT session_id, host_name, ip_address, timestp, expires_at
              FROM session WHERE user_id = $1 AND expires_at > NOW()
              ORDER BY timestp DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]map[string]interface{}, 0)
	for rows.Next() {
		var sessionID, hostName, ipAddress string
		var timestamp, expiresAt time.Time
		if err := rows.Scan(&sessionID, &hostName, &ipAddress, &timestamp, &expiresAt); err != nil {
			return nil, err
		}
		devices = append(devices, map[string]interface{}{
			"session_id": sessionID,
			"host_name":  hostName,
			"ip_address": ipAddress,
			"timestamp":  timestamp,
			"expires_at": expiresAt,
		})
	}
	return devices, nil
}

func CleanupExpiredSessions(db *sql.DB) error {
	threshold := time.Now().Add(-24 * time.Hour)
	_, err := db.Exec("DELETE FROM session WHERE expires_at < $1", threshold)
	return err
}

// SaveOptimizationResult persists one Optimize run against a project,
// storing the full placement payload as JSON for later replay.
func SaveOptimizationResult(db *sql.DB, projectID int, stats models.StatsOutput, payload interface{}) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal optimization payload: %v", err)
	}

	var id int
	query := `INSERT INTO optimization_results
		(project_id, panel_count, total_used_area, total_waste_area, used_percentage, waste_percentage, usable_waste_area, result_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING id`
	err = db.QueryRow(query, projectID, stats.PanelCount, stats.TotalUsedArea, stats.TotalWasteArea,
		stats.UsedPercentage, stats.WastePercentage, stats.UsableWasteArea, data).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save optimization result: %v", err)
	}
	return id, nil
}

// GetOptimizationResultsForProject returns every persisted run for a
// project, most recent first.
func GetOptimizationResultsForProject(db *sql.DB, projectID int) ([]models.OptimizationResult, error) {
	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	query := `SELECT id, project_id, panel_count, total_used_area, total_waste_area, used_percentage, waste_percentage, usable_waste_area, result_data, created_at
              FROM optimization_results WHERE project_id = $1 ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.OptimizationResult
	for rows.Next() {
		var r models.OptimizationResult
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.PanelCount, &r.TotalUsedArea, &r.TotalWasteArea,
			&r.UsedPercentage, &r.WastePercentage, &r.UsableWasteArea, &r.ResultData, &r.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// PruneOptimizationResults deletes persisted runs older than olderThan,
// keeping the optimization_results table bounded (wired into the
// retention cron job). This can be a large delete, so it runs under the
// slow-query timeout rather than the default one.
func PruneOptimizationResults(db *sql.DB, olderThan time.Time) (int64, error) {
	ctx, cancel := utils.GetSlowQueryContext(context.Background())
	defer cancel()

	result, err := db.ExecContext(ctx, `DELETE FROM optimization_results WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
