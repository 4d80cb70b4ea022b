package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	HTTPPort           string
	DatabaseURL        string
	JWTSecret          string
	JWTExpires         time.Duration
	SupabaseURL        string
	SupabaseServiceKey string
	AIServiceURL       string
	N8NWebhookURL      string
	FrontendURL        string
	Environment        string
}

// Load reads configuration from the environment. Missing required values
// indicate a deployment problem, so the process refuses to start.
func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpires:         getDuration("JWT_EXPIRES", 24*time.Hour),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		AIServiceURL:       getEnv("AI_SERVICE_URL", "http://localhost:8000"),
		N8NWebhookURL:      getEnv("N8N_WEBHOOK_URL", "http://localhost:5678/webhook/analizar-postulacion"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3001"),
		Environment:        getEnv("APP_ENV", "development"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.SupabaseURL == "" {
		log.Fatal("SUPABASE_URL is required")
	}
	if cfg.SupabaseServiceKey == "" {
		log.Fatal("SUPABASE_SERVICE_KEY is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
