package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	// Slot generation policy.
	SlotDayStartHour int
	SlotDayEndHour   int
	SlotMaxQuantity  int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Slot working-hour window (default: 09:00–17:00)
	cfg.SlotDayStartHour, err = getEnvAsInt("SLOT_DAY_START_HOUR", 9)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_DAY_START_HOUR: %w", err)
	}
	cfg.SlotDayEndHour, err = getEnvAsInt("SLOT_DAY_END_HOUR", 17)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_DAY_END_HOUR: %w", err)
	}
	if cfg.SlotDayStartHour > cfg.SlotDayEndHour {
		return nil, fmt.Errorf("SLOT_DAY_START_HOUR %d is after SLOT_DAY_END_HOUR %d",
			cfg.SlotDayStartHour, cfg.SlotDayEndHour)
	}

	// Maximum quantity a single slot can carry (default: 5)
	cfg.SlotMaxQuantity, err = getEnvAsInt("SLOT_MAX_QUANTITY", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_MAX_QUANTITY: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
