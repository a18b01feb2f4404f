// Package config loads runtime defaults from the environment and an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Command-line flags override them.
type Config struct {
	InputFile   string // Map file to load
	LogFile     string // Debug log destination; empty disables logging
	ViewMax     int    // Largest viewport edge in cells; 0 means fit the terminal
	WebAddr     string // Listen address for web mode
	ReleaseRepo string // "owner/repo" checked by --update; empty disables the check
}

const (
	DefaultInputFile = "input/day6.txt"
	DefaultWebAddr   = "localhost:8080"
)

// Load reads .env files (if present) and then the process environment.
// A missing .env file is not an error.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	return Config{
		InputFile:   getEnvWithDefault("GUARD_INPUT", DefaultInputFile),
		LogFile:     getEnvWithDefault("GUARD_LOG_FILE", ""),
		ViewMax:     getEnvAsIntWithDefault("GUARD_VIEW_MAX", 0),
		WebAddr:     getEnvWithDefault("GUARD_WEB_ADDR", DefaultWebAddr),
		ReleaseRepo: getEnvWithDefault("GUARD_RELEASE_REPO", ""),
	}
}

// ReleaseOwnerRepo splits ReleaseRepo into its owner and repository parts.
func (c Config) ReleaseOwnerRepo() (owner, repo string, ok bool) {
	owner, repo, ok = strings.Cut(c.ReleaseRepo, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values fall back to the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}
