package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type AppConfig struct {
	Port              string
	MONGOSTRING       string
	MongoDBName       string
	StoreDriver       string
	MongoTransactions bool
	AllowedOrigins    []string
	RequestTimeout    time.Duration
}

// LoadConfig loads configuration from the environment, reading .env first
// when one exists.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded (fine outside development): %v", err)
	}
	return fromEnv()
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:           getEnv("PORT", "3000"),
		MONGOSTRING:    getEnv("MONGOSTRING", ""),
		MongoDBName:    getEnv("MONGO_DB_NAME", "hrms-lite"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}

	tx, err := strconv.ParseBool(getEnv("MONGO_TRANSACTIONS", "false"))
	if err != nil {
		return nil, fmt.Errorf("MONGO_TRANSACTIONS: %w", err)
	}
	cfg.MongoTransactions = tx

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.RequestTimeout = timeout

	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MONGOSTRING == "" {
			return nil, fmt.Errorf("MONGOSTRING is required when STORE_DRIVER=%s", DriverMongo)
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMongo, DriverMemory, cfg.StoreDriver)
	}

	return cfg, nil
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
