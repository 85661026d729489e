// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"fundraise-tracker/pkg/db"
)

// Store driver selection.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort   string
	StoreDriver  string
	JWTSecret    string
	SeedDemoData bool
	DB           db.Config
}

// LoadConfig loads configuration from the environment, reading a .env
// file first when one is present. Defaults suit local development.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load() // missing .env is fine

	serverPort := getEnv("SERVER_PORT", "3001")

	storeDriver := getEnv("STORE_DRIVER", StoreDriverMemory)
	if storeDriver != StoreDriverMemory && storeDriver != StoreDriverPostgres {
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be %q or %q",
			storeDriver, StoreDriverMemory, StoreDriverPostgres)
	}

	jwtSecret := getEnv("JWT_SECRET", "dev-secret")

	seedDemoData := false
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
		}
		seedDemoData = parsed
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return &AppConfig{
		ServerPort:   serverPort,
		StoreDriver:  storeDriver,
		JWTSecret:    jwtSecret,
		SeedDemoData: seedDemoData,
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "fundraisedb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
