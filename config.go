package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"marketplace-service/database"
	"marketplace-service/services"
)

type Config struct {
	Port        string
	Environment string
	PriceSource string
	DB          database.Config
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		PriceSource: getEnv("PRICE_SOURCE", services.PriceSourceRequest),
		DB: database.Config{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Name:     getEnv("POSTGRES_DB", "marketplace"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		},
	}

	if cfg.PriceSource != services.PriceSourceRequest && cfg.PriceSource != services.PriceSourceCatalog {
		return nil, fmt.Errorf("invalid PRICE_SOURCE %q: must be %q or %q",
			cfg.PriceSource, services.PriceSourceRequest, services.PriceSourceCatalog)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
