package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvDir, EnvStore, EnvDSN, EnvTheme} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.Backend != BackendJSON || c.Theme != "classic" {
		t.Errorf("defaults = %+v", c)
	}
	want := filepath.Join(home, ".shoplist")
	if c.DataDir != want {
		t.Errorf("DataDir = %q, want %q", c.DataDir, want)
	}
	fi, err := os.Stat(want)
	if err != nil || !fi.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvStore, "SQLite")
	t.Setenv(EnvTheme, "neon")

	c, err := Resolve(Config{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.DataDir != dir || c.Backend != BackendSQLite || c.Theme != "neon" {
		t.Errorf("resolved = %+v", c)
	}
}

func TestFlagBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStore, "sqlite")
	c, err := Resolve(Config{Backend: "mem"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend != BackendMem {
		t.Errorf("Backend = %q, want mem", c.Backend)
	}
}

func TestMySQLNeedsDSN(t *testing.T) {
	clearEnv(t)
	if _, err := Resolve(Config{Backend: "mysql"}); err == nil {
		t.Fatal("expected error without dsn")
	}
	t.Setenv(EnvDSN, "u:p@tcp(localhost:3306)/shoplist")
	if _, err := Resolve(Config{Backend: "mysql"}); err != nil {
		t.Fatalf("with dsn: %v", err)
	}
}

func TestUnknownBackend(t *testing.T) {
	clearEnv(t)
	if _, err := Resolve(Config{Backend: "redis"}); err == nil {
		t.Fatal("expected error")
	}
}
