package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort      string
	AppEnv       string
	JWTSecret    string
	AdminPinHash string

	// Optional overrides for the seeded store profile.
	StoreName string
	Currency  string

	// Optional comma-separated printer name prefixes; empty keeps
	// the built-in defaults.
	PrinterPrefixes string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		AppEnv:          getEnv("APP_ENV", "development"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminPinHash:    os.Getenv("ADMIN_PIN_HASH"),
		StoreName:       os.Getenv("STORE_NAME"),
		Currency:        os.Getenv("STORE_CURRENCY"),
		PrinterPrefixes: os.Getenv("PRINTER_NAME_PREFIXES"),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
