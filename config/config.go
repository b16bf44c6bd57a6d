package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath  string
	JWTSecret     string
	JWTExpiration time.Duration
	ServerPort    string
	CORSOrigins   []string
}

func Load() *Config {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		DatabasePath:  getEnv("DATABASE_PATH", "./database.sqlite"),
		JWTSecret:     getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration: 24 * time.Hour,
		ServerPort:    getEnv("SERVER_PORT", "5000"),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
