package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds runtime configuration for the neuroblock CLI.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the user's home directory.
	DBPath string
	// DefaultDurationMin is the session length used when no duration is
	// given on the command line.
	DefaultDurationMin int
	// Notifications enables session start/end notices on stderr.
	Notifications bool
	// LogUseCases enables service use-case telemetry on stderr.
	LogUseCases bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultDurationMin: 25,
		Notifications:      true,
		LogUseCases:        false,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NEUROBLOCK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NEUROBLOCK_DEFAULT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 5 && n <= 480 {
			cfg.DefaultDurationMin = n
		}
	}
	if v := os.Getenv("NEUROBLOCK_NOTIFICATIONS"); v != "" {
		cfg.Notifications, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NEUROBLOCK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.neuroblock/neuroblock.db.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".neuroblock", "neuroblock.db"), nil
}
