// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
)

// Config holds everything the receipt book needs to run. There is no
// server and no network, so this is just filesystem locations.
type Config struct {
	// DBPath is the SQLite database file. Parent directories are
	// created on first open.
	DBPath string

	// ExportDir is where exported PDF/xlsx documents are written.
	ExportDir string
}

// Load reads configuration from the environment with local defaults.
func Load() *Config {
	return &Config{
		DBPath:    getEnv("RECEIPTBOOK_DB_PATH", "./data/receiptbook.db"),
		ExportDir: getEnv("RECEIPTBOOK_EXPORT_DIR", "./exports"),
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export directory must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
