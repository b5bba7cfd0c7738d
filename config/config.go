// Package config centralizes the environment-driven settings every other
// package needs at startup: database DSN pieces, the JWT signing secret,
// and the Firebase service-account path used by the push-notification
// service. It loads .env once and exposes a single Config value.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting the server needs.
type Config struct {
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string

	JWTSecret     string
	JWTIssuer     string
	ServerPort    string
	AllowedOrigin string

	FCMCredentialsPath string
	FCMProjectID       string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

// Load reads .env (if present) and the process environment into a Config,
// applying the same fallback defaults the teacher's startup path used.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	return Config{
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "cutlist"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),

		JWTSecret:     getenv("JWT_SECRET", "change-me"),
		JWTIssuer:     getenv("JWT_ISSUER", "cutlist-optimizer"),
		ServerPort:    getenv("SERVER_PORT", "8080"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "*"),

		FCMCredentialsPath: getenv("FCM_CREDENTIALS_PATH", ""),
		FCMProjectID:       getenv("FCM_PROJECT_ID", ""),

		SMTPHost: getenv("SMTP_HOST", ""),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: getenv("SMTP_USER", ""),
		SMTPPass: getenv("SMTP_PASS", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
