package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/flashquiz/internal/logger"
)

type Config struct {
	DeckPath  string
	DeckName  string
	Mode      string
	ShowStats bool
	Color     bool
	Seed      uint64 // 0 seeds from the clock
	LogLevel  string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
// Command-line flags are applied on top by the caller.
func Load() Config {
	// Ignore error so the quiz still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DeckPath:  envOr("FLASHQUIZ_FILE", ""),
		DeckName:  envOr("FLASHQUIZ_DECK_NAME", ""),
		Mode:      envOr("FLASHQUIZ_MODE", "sequential"),
		ShowStats: envBoolOr("FLASHQUIZ_STATS", false),
		Color:     envBoolOr("FLASHQUIZ_COLOR", true),
		Seed:      envUintOr("FLASHQUIZ_SEED", 0),
		LogLevel:  envOr("LOG_LEVEL", "WARN"),
	}
}

// Validate reports every problem found, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DeckPath) == "" {
		errs = append(errs, errors.New("FLASHQUIZ_FILE cannot be empty: pass --file or set FLASHQUIZ_FILE"))
	}
	if strings.TrimSpace(c.Mode) == "" {
		errs = append(errs, errors.New("FLASHQUIZ_MODE cannot be empty"))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q must be one of DEBUG, INFO, WARN, ERROR, OFF", c.LogLevel))
	}
	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}

func envUintOr(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
