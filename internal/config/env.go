package config

import (
	"os"
	"strings"
)

// Env holds process configuration resolved once at startup.
type Env struct {
	AppAddr string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CORSOrigins []string

	JWTSecret string

	AdminEmail    string
	AdminPassword string
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func LoadEnv() Env {
	return Env{
		AppAddr: getenv("APP_ADDR", ":5000"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBName:     getenv("DB_NAME", "ticketing_admin"),

		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),

		JWTSecret: getenv("JWT_SECRET", "change-me-in-production"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "1234"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultCORSOrigins
	}
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return defaultCORSOrigins
	}
	return out
}
