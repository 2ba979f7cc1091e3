package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	AdminEmail    string
	AdminPassword string
	IsProd        bool
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "secret_key_change_me"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@stackit.local"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}
	return cfg
}
