package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port         string
	Mode         string
	UserEmail    string
	AllowOrigins []string
}

// Load reads configuration from the environment, with an optional .env
// file providing defaults for local runs.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Skipping .env file")
	}

	return Config{
		Port:         getEnv("PORT", "8080"),
		Mode:         getEnv("GIN_MODE", "debug"),
		UserEmail:    getEnv("USER_EMAIL", ""),
		AllowOrigins: strings.Split(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
