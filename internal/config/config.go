package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	HandSize int
	Seed     int64 // 0 means seed from the clock

	// Player names
	PlayerOneName string
	PlayerTwoName string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	handSize, err := getEnvIntWithDefault("HAND_SIZE", 3)
	if err != nil {
		return nil, err
	}

	seed, err := getEnvIntWithDefault("SHUFFLE_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HandSize:      handSize,
		Seed:          int64(seed),
		PlayerOneName: getEnvWithDefault("PLAYER_ONE_NAME", "Player One"),
		PlayerTwoName: getEnvWithDefault("PLAYER_TWO_NAME", "Player Two"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.HandSize < 1 {
		return fmt.Errorf("HAND_SIZE must be at least 1, got %d", c.HandSize)
	}
	if 2*c.HandSize > 52 {
		return fmt.Errorf("HAND_SIZE %d needs %d cards but a deck only holds 52", c.HandSize, 2*c.HandSize)
	}
	if c.PlayerOneName == "" {
		return fmt.Errorf("PLAYER_ONE_NAME must not be empty")
	}
	if c.PlayerTwoName == "" {
		return fmt.Errorf("PLAYER_TWO_NAME must not be empty")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault returns an integer environment variable or default if not set
func getEnvIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return n, nil
}
