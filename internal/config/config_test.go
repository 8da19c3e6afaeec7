package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.InputPath != "companies.xlsx" {
		t.Errorf("unexpected default input: %s", cfg.InputPath)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("unexpected default output dir: %s", cfg.OutputDir)
	}
	if cfg.SeenPath != "seen.csv" {
		t.Errorf("unexpected default seen path: %s", cfg.SeenPath)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.Timeout)
	}
	if cfg.Concurrency != 1 {
		t.Errorf("unexpected default concurrency: %d", cfg.Concurrency)
	}
}

func TestDefault_EnvOverrides(t *testing.T) {
	t.Setenv("JOBSWEEP_INPUT", "targets.csv")
	t.Setenv("JOBSWEEP_SEEN", "state/seen.db")
	t.Setenv("HTTP_TIMEOUT", "45")
	t.Setenv("HTTP_UA", "custom-agent/2.0")

	cfg := Default()
	if cfg.InputPath != "targets.csv" {
		t.Errorf("env input override not applied: %s", cfg.InputPath)
	}
	if cfg.SeenPath != "state/seen.db" {
		t.Errorf("env seen override not applied: %s", cfg.SeenPath)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("env timeout override not applied: %v", cfg.Timeout)
	}
	if cfg.UserAgent != "custom-agent/2.0" {
		t.Errorf("env user agent override not applied: %s", cfg.UserAgent)
	}
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
input: targets.xlsx
output_dir: results
seen_path: seen.db
timeout: 30s
concurrency: 4
keywords: "engineer; golang"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InputPath != "targets.xlsx" {
		t.Errorf("unexpected input: %s", cfg.InputPath)
	}
	if cfg.OutputDir != "results" {
		t.Errorf("unexpected output dir: %s", cfg.OutputDir)
	}
	if cfg.SeenPath != "seen.db" {
		t.Errorf("unexpected seen path: %s", cfg.SeenPath)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("unexpected concurrency: %d", cfg.Concurrency)
	}
	if cfg.Keywords != "engineer; golang" {
		t.Errorf("unexpected keywords: %q", cfg.Keywords)
	}
}

func TestLoad_UnsetFieldsKeepDefaults(t *testing.T) {
	path := writeTempConfig(t, `input: targets.csv`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.Timeout != 20*time.Second {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("SWEEP_DATA_DIR", "/var/lib/jobsweep")
	path := writeTempConfig(t, `seen_path: ${SWEEP_DATA_DIR}/seen.csv`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeenPath != "/var/lib/jobsweep/seen.csv" {
		t.Errorf("env var not expanded: %s", cfg.SeenPath)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := writeTempConfig(t, `timeout: soon`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}

func TestLoad_SlackWithoutWebhook(t *testing.T) {
	path := writeTempConfig(t, `
slack:
  enabled: true
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when slack is enabled without a webhook URL")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
