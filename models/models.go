package models

import "time"

// User is an account holder. Passwords are always stored as bcrypt hashes;
// the Password field is only ever populated from the database layer and is
// never marshalled back out over JSON.
type User struct {
	ID          int       `json:"id" example:"1"`
	Email       string    `json:"email" example:"user@example.com"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name" example:"John"`
	LastName    string    `json:"last_name" example:"Doe"`
	CreatedAt   time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
	LastAccess  time.Time `json:"last_access,omitempty" example:"2024-01-15T10:30:00Z"`
	IsAdmin     bool      `json:"is_admin" example:"false"`
}

// Session is one logged-in device/browser for a user, tracked so a refresh
// token can be rotated and a session revoked independently of the others.
type Session struct {
	UserID                int       `json:"user_id"`
	SessionID             string    `json:"session_id"`
	HostName              string    `json:"host_name"`
	IPAddress             string    `json:"ip_address"`
	Timestamp             time.Time `json:"timestp"`
	ExpiresAt             time.Time `json:"expires_at"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
}
