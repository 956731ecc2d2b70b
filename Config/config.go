package Config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds everything read from the environment at startup.
type AppConfig struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
	JWTSecret   string
	ResetCode   string
	UploadDir   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
}

// Load reads config from a .env file when present and the process
// environment otherwise. Defaults keep local development working with no
// setup at all.
func Load() AppConfig {
	_ = godotenv.Load(".env")

	return AppConfig{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SQLitePath:  getEnv("SQLITE_PATH", "garage.db"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		ResetCode:   getEnv("RESET_CODE", "STE-2026"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPassword: os.Getenv("SMTP_PASS"),
		SMTPFrom:     strings.TrimSpace(os.Getenv("SMTP_FROM")),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Garage"),
	}
}

// SMTPConfigured reports whether email delivery can be attempted.
func (c AppConfig) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != "" && c.From() != ""
}

// From is the sender address, falling back to the SMTP user.
func (c AppConfig) From() string {
	if c.SMTPFrom != "" {
		return c.SMTPFrom
	}
	return c.SMTPUser
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
