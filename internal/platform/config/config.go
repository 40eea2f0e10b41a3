package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	JWTKey []byte
	JWTExp time.Duration

	// PublicDir is the directory the static frontend is served from.
	PublicDir string

	// Artificial latency for the submission simulator. Zero disables the
	// sleep entirely, which is what the tests rely on.
	TestRunDelay time.Duration
	SubmitDelay  time.Duration

	LogLevel string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		Port:         getEnv("PORT", "7000"),
		JWTKey:       []byte(getEnv("JWT_SECRET", "demo-insecure-secret-change-me")),
		JWTExp:       time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		PublicDir:    getEnv("PUBLIC_DIR", "./public"),
		TestRunDelay: time.Duration(getEnvAsInt("TEST_RUN_DELAY_MS", 1000)) * time.Millisecond,
		SubmitDelay:  time.Duration(getEnvAsInt("SUBMIT_DELAY_MS", 1500)) * time.Millisecond,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
