package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("CLOCKBOOK_DB_DRIVER")
	_ = os.Unsetenv("CLOCKBOOK_HTTP_PORT")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "memory" || cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HealthIntervalSeconds != 30 || cfg.HealthProbeTimeoutSeconds != 2 {
		t.Fatalf("unexpected health defaults: %+v", cfg)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("CLOCKBOOK_DB_DRIVER", "sqlite")
	_ = os.Setenv("CLOCKBOOK_SQLITE_PATH", "/tmp/test.db")
	defer func() {
		_ = os.Unsetenv("CLOCKBOOK_DB_DRIVER")
		_ = os.Unsetenv("CLOCKBOOK_SQLITE_PATH")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath != "/tmp/test.db" {
		t.Fatalf("env override failed: %+v", cfg)
	}
}

func TestResolveDefaults_RejectsUnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "cassandra"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error when DSN missing")
	}
	cfg.PostgresDSN = "postgres://localhost/clockbook"
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
