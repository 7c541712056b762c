// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is applied
// first when present, so local development does not need exported variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// DefaultFileName is the ride file under the user's home directory.
const DefaultFileName = ".bikerides"

// Config holds all configuration values for the velolog binaries.
// Values are populated by Load from environment variables.
type Config struct {
	// RidesFile is the path of the ride store. Defaults to ~/.bikerides.
	RidesFile string

	// Delimiter is the single-character field delimiter of the store
	// encoding. Defaults to ','. The double quote is reserved for quoting.
	Delimiter rune

	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from the environment (and an optional .env file)
// and returns a Config. Returns an error when a value fails validation.
func Load() (Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	cfg.RidesFile = os.Getenv("RIDES_FILE")
	if cfg.RidesFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config: resolve home directory: %w", err)
		}
		cfg.RidesFile = filepath.Join(home, DefaultFileName)
	}

	delim := getEnv("RIDES_DELIMITER", ",")
	r, size := utf8.DecodeRuneInString(delim)
	if size != len(delim) || r == utf8.RuneError {
		return Config{}, fmt.Errorf("config: RIDES_DELIMITER must be a single character, got %q", delim)
	}
	if r == '"' {
		return Config{}, fmt.Errorf("config: RIDES_DELIMITER must not be the quote character")
	}
	cfg.Delimiter = r

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
