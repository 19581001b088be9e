package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cricketpro/cricket-scoring-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
server:
  host: 127.0.0.1
  port: 18080
  shutdown_timeout_sec: 5
  cors_origins:
    - http://localhost:3000

logger:
  level: info
  format: json
  env: prod

backup:
  path: /tmp/cricket/backup.json
  reconcile_on_start: false
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_SERVER_PORT", "19090")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("yaml host not loaded, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 19090 {
		t.Fatalf("env override not applied, got port %d", cfg.Server.Port)
	}
	if cfg.Backup.Path != "/tmp/cricket/backup.json" || cfg.Backup.ReconcileOnStart {
		t.Fatalf("backup section not loaded: %+v", cfg.Backup)
	}
	if len(cfg.Server.CORSOrigins) != 1 {
		t.Fatalf("cors origins not loaded: %v", cfg.Server.CORSOrigins)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, "logger:\n  level: info\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Backup.Path != "data/backup.json" || !cfg.Backup.ReconcileOnStart {
		t.Fatalf("backup defaults not applied: %+v", cfg.Backup)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}
