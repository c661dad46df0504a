package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 4 || cfg.TimeoutSeconds != 5 || cfg.Retries != 0 {
		t.Fatalf("probe defaults wrong: %+v", cfg)
	}
	if cfg.Output != "status.json" {
		t.Fatalf("output default wrong: %+v", cfg)
	}
	if cfg.LogDir != "" || cfg.DiagnoseDNS || cfg.SlackWebhook != "" {
		t.Fatalf("optional features must default off: %+v", cfg)
	}
	if cfg.Serve.Addr != "127.0.0.1:8080" {
		t.Fatalf("serve default wrong: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webcheck.yaml")
	yaml := `
workers: 12
timeout_seconds: 2
retries: 3
output: out/report.json
serve:
  addr: ":9999"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 12 || cfg.TimeoutSeconds != 2 || cfg.Retries != 3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Output != "out/report.json" || cfg.Serve.Addr != ":9999" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEBCHECK_WORKERS", "9")
	t.Setenv("WEBCHECK_TIMEOUT_SECONDS", "30")
	t.Setenv("WEBCHECK_SERVE_ADDR", "0.0.0.0:7070")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 9 {
		t.Fatalf("want workers 9 from env, got %d", cfg.Workers)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Fatalf("want timeout 30 from env, got %d", cfg.TimeoutSeconds)
	}
	if cfg.Serve.Addr != "0.0.0.0:7070" {
		t.Fatalf("want serve addr from env, got %q", cfg.Serve.Addr)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("want error for unreadable explicit config path")
	}
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webcheck.yaml")
	if err := os.WriteFile(path, []byte("workers: [not an int"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("want error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }},
		{"negative retries", func(c *Config) { c.Retries = -1 }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"empty serve addr", func(c *Config) { c.Serve.Addr = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("want validation error for %s", tc.name)
			}
		})
	}
}

func TestTimeout_Conversion(t *testing.T) {
	cfg := Config{TimeoutSeconds: 7}
	if cfg.Timeout() != 7*time.Second {
		t.Fatalf("want 7s, got %v", cfg.Timeout())
	}
}
