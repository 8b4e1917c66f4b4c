package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Log       *LogConfig
	Rental    *RentalConfig
	Simulator *SimulatorConfig
}

type LogConfig struct {
	Level  string
	Format string // text, json
	Output string // stderr, stdout, file path
}

type RentalConfig struct {
	Currency string
	SeedFile string
}

type SimulatorConfig struct {
	FleetSize int
	Steps     int
	Tick      time.Duration
}

// Load reads configuration from the environment. Values from envFiles (or
// ".env" when none are given) are applied first without overriding variables
// that are already set; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return &Config{
		Log:       loadLogConfig(),
		Rental:    loadRentalConfig(),
		Simulator: loadSimulatorConfig(),
	}, nil
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
		Output: getEnv("LOG_OUTPUT", "stderr"),
	}
}

func loadRentalConfig() *RentalConfig {
	return &RentalConfig{
		Currency: getEnv("RENTAL_CURRENCY", "₹"),
		SeedFile: getEnv("RENTAL_SEED_FILE", ""),
	}
}

func loadSimulatorConfig() *SimulatorConfig {
	return &SimulatorConfig{
		FleetSize: getEnvAsInt("FLEET_SIZE", 10),
		Steps:     getEnvAsInt("SIM_STEPS", 50),
		Tick:      getEnvAsDuration("SIM_TICK", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
