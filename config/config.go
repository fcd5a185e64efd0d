// Package config reads application settings from the environment.
// File: config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"

	"hackathon-hub/logger"
)

// Config holds all the configuration variables for the application.
type Config struct {
	Env            string
	Port           string
	ApplicationURL string
	SessionSecret  string
	DBHost         string
	DBUser         string
	DBPass         string
	DBName         string
	DBPort         string
	S3Bucket       string
	AWSRegion      string
}

// Load reads the application configuration from environment variables
// and the .env file if it exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Env:            getEnvOrDefault("ENV", "development"),
		Port:           getEnvOrDefault("PORT", "8080"),
		ApplicationURL: getEnvOrDefault("APPLICATION_URL", "http://localhost:8080"),
		SessionSecret:  getEnvOrDefault("SESSION_SECRET", "secret"),
		DBHost:         getEnvOrDefault("DB_HOST", "localhost"),
		DBUser:         getEnvOrDefault("DB_USER", "hackathon"),
		DBPass:         getEnvOrDefault("DB_PASSWORD", "hackathon"),
		DBName:         getEnvOrDefault("DB_NAME", "hackathon_hub"),
		DBPort:         getEnvOrDefault("DB_PORT", "5432"),
		S3Bucket:       getEnvOrDefault("S3_BUCKET", "hackathon-hub-uploads"),
		AWSRegion:      getEnvOrDefault("AWS_REGION", "ap-southeast-2"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}
