package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "JWT_EXPIRATION_HOURS", "PUBLIC_DIR", "TEST_RUN_DELAY_MS", "SUBMIT_DELAY_MS", "LOG_LEVEL"} {
		os.Unsetenv(key)
	}

	Load()

	if AppConfig.Port != "7000" {
		t.Errorf("Expected default port 7000, got %s", AppConfig.Port)
	}
	if string(AppConfig.JWTKey) != "demo-insecure-secret-change-me" {
		t.Errorf("Expected insecure fallback secret, got %s", AppConfig.JWTKey)
	}
	if AppConfig.JWTExp != 24*time.Hour {
		t.Errorf("Expected 24h token expiry, got %v", AppConfig.JWTExp)
	}
	if AppConfig.TestRunDelay != 1000*time.Millisecond {
		t.Errorf("Expected 1000ms test run delay, got %v", AppConfig.TestRunDelay)
	}
	if AppConfig.SubmitDelay != 1500*time.Millisecond {
		t.Errorf("Expected 1500ms submit delay, got %v", AppConfig.SubmitDelay)
	}
	if AppConfig.PublicDir != "./public" {
		t.Errorf("Expected default public dir ./public, got %s", AppConfig.PublicDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")
	t.Setenv("TEST_RUN_DELAY_MS", "0")
	t.Setenv("SUBMIT_DELAY_MS", "0")

	Load()

	if AppConfig.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", AppConfig.Port)
	}
	if string(AppConfig.JWTKey) != "test-secret" {
		t.Errorf("Expected overridden secret, got %s", AppConfig.JWTKey)
	}
	if AppConfig.JWTExp != time.Hour {
		t.Errorf("Expected 1h token expiry, got %v", AppConfig.JWTExp)
	}
	if AppConfig.TestRunDelay != 0 {
		t.Errorf("Expected zero test run delay, got %v", AppConfig.TestRunDelay)
	}
	if AppConfig.SubmitDelay != 0 {
		t.Errorf("Expected zero submit delay, got %v", AppConfig.SubmitDelay)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	Load()

	if AppConfig.JWTExp != 24*time.Hour {
		t.Errorf("Expected fallback 24h expiry for invalid value, got %v", AppConfig.JWTExp)
	}
}
