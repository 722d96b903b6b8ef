// Package config loads runtime settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"

	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"

	CooldownFrame = "frame"
	CooldownStep  = "step"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Frontend   string
	CellSize   int
	Randomizer string
	// Seed seeds the randomizer; zero picks a fresh seed per run.
	Seed     uint64
	Cooldown string
	Debug    bool
	DebugUI  bool
	LogFile  string
}

// Load reads .env from the working directory if present, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	return load()
}

func load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("[INFO] No .env file found, reading from environment")
	}

	cfg := &Config{
		Frontend:   getEnv("BLOCKFALL_FRONTEND", FrontendWindow),
		CellSize:   getEnvAsInt("BLOCKFALL_CELL_SIZE", 24),
		Randomizer: getEnv("BLOCKFALL_RANDOMIZER", RandomizerUniform),
		Cooldown:   getEnv("BLOCKFALL_COOLDOWN", CooldownFrame),
		Debug:      getEnvAsBool("DEBUG", false),
		DebugUI:    getEnvAsBool("BLOCKFALL_DEBUG_UI", false),
		LogFile:    getEnv("BLOCKFALL_LOG_FILE", "blockfall.log"),
	}

	if value := os.Getenv("BLOCKFALL_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: BLOCKFALL_SEED: %w", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: BLOCKFALL_FRONTEND must be %q or %q, got %q", ErrInvalidConfig, FrontendWindow, FrontendTerminal, c.Frontend)
	}

	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: BLOCKFALL_RANDOMIZER must be %q or %q, got %q", ErrInvalidConfig, RandomizerUniform, RandomizerBag, c.Randomizer)
	}

	switch c.Cooldown {
	case CooldownFrame, CooldownStep:
	default:
		return fmt.Errorf("%w: BLOCKFALL_COOLDOWN must be %q or %q, got %q", ErrInvalidConfig, CooldownFrame, CooldownStep, c.Cooldown)
	}

	if c.CellSize < 8 || c.CellSize > 128 {
		return fmt.Errorf("%w: BLOCKFALL_CELL_SIZE must be between 8 and 128, got %d", ErrInvalidConfig, c.CellSize)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
