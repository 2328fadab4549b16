package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Env overrides, checked when the matching flag was not given.
const (
	EnvDir   = "SHOPLIST_DIR"
	EnvStore = "SHOPLIST_STORE"
	EnvDSN   = "SHOPLIST_DSN"
	EnvTheme = "SHOPLIST_THEME"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
	BackendMem    = "mem"
)

type Config struct {
	DataDir string
	Backend string
	DSN     string
	Theme   string
	Group   bool
}

// Resolve fills empty fields from the environment, then from defaults,
// and validates the result. The data directory is created (0700) for
// file-backed stores.
func Resolve(c Config) (Config, error) {
	c.DataDir = firstNonEmpty(c.DataDir, os.Getenv(EnvDir))
	c.Backend = strings.ToLower(firstNonEmpty(c.Backend, os.Getenv(EnvStore), BackendJSON))
	c.DSN = firstNonEmpty(c.DSN, os.Getenv(EnvDSN))
	c.Theme = strings.ToLower(firstNonEmpty(c.Theme, os.Getenv(EnvTheme), "classic"))

	switch c.Backend {
	case BackendJSON, BackendSQLite:
		if c.DataDir == "" {
			dir, err := defaultDir()
			if err != nil {
				return c, err
			}
			c.DataDir = dir
		}
		if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
			return c, fmt.Errorf("mkdir: %w", err)
		}
	case BackendMySQL:
		if c.DSN == "" {
			return c, fmt.Errorf("store %s needs a dsn (-dsn or %s)", c.Backend, EnvDSN)
		}
	case BackendMem:
	default:
		return c, fmt.Errorf("unknown store %q (want json, sqlite, mysql or mem)", c.Backend)
	}
	return c, nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".shoplist"), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
