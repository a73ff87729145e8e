// ABOUTME: Server configuration merged from SITEWRIGHT_* environment variables and flags.
// ABOUTME: Selects the persistence backend (file or sqlite) and the data directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	storeFile   = "file"
	storeSqlite = "sqlite"
)

// config holds the runtime configuration. Flags override SITEWRIGHT_*
// environment variables, which override the built-in defaults.
type config struct {
	bind      string // Socket address (SITEWRIGHT_BIND, default: 127.0.0.1:8419)
	dataDir   string // Data directory (SITEWRIGHT_DATA_DIR, default: ~/.sitewright)
	storeKind string // Persistence backend: file or sqlite (SITEWRIGHT_STORE, default: file)
}

// configFromEnv loads configuration from SITEWRIGHT_* environment variables
// with defaults applied.
func configFromEnv() config {
	dataDir := envOrDefault("SITEWRIGHT_DATA_DIR", "")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "/tmp"
		}
		dataDir = filepath.Join(homeDir, ".sitewright")
	}

	return config{
		bind:      envOrDefault("SITEWRIGHT_BIND", "127.0.0.1:8419"),
		dataDir:   dataDir,
		storeKind: envOrDefault("SITEWRIGHT_STORE", storeFile),
	}
}

// validate rejects unknown store kinds before anything touches disk.
func (c config) validate() error {
	if c.storeKind != storeFile && c.storeKind != storeSqlite {
		return fmt.Errorf("unknown store kind %q: want %q or %q", c.storeKind, storeFile, storeSqlite)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
