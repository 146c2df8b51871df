package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	Timezone  string
	DBPath    string
	JWTSecret string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:      get("PORT", "8001"),
		Timezone:  get("TZ", "UTC"),
		DBPath:    get("DB_PATH", "arboria.db"),
		JWTSecret: get("JWT_SECRET", "dev-secret-change-me"),
	}
	log.Printf("[cfg] port=%s db=%s tz=%s", cfg.Port, cfg.DBPath, cfg.Timezone)
	return cfg
}
