package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hamed0406/webcheck/internal/targets"
)

// chdirTemp moves the test into a fresh directory so the run can neither
// pick up a stray webcheck.yaml nor leave a report behind.
func chdirTemp(t *testing.T) string {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestRootCmd_NoTargetsWritesNoReport(t *testing.T) {
	dir := chdirTemp(t)

	rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()
	if !errors.Is(err, targets.ErrNoTargets) {
		t.Fatalf("want ErrNoTargets, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "status.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("an empty run must not write a report, stat err = %v", err)
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webcheck.yaml")
	yaml := "workers: 2\nretries: 3\noutput: from-file.json\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldConfig := flagConfig
	flagConfig = path
	t.Cleanup(func() { flagConfig = oldConfig })

	if err := rootCmd.Flags().Set("workers", "9"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := resolveConfig(rootCmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Workers != 9 {
		t.Fatalf("a set flag beats the file: want workers 9, got %d", cfg.Workers)
	}
	if cfg.Retries != 3 {
		t.Fatalf("an untouched flag keeps the file value: want retries 3, got %d", cfg.Retries)
	}
	if cfg.Output != "from-file.json" {
		t.Fatalf("want output from the file, got %q", cfg.Output)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Fatalf("want default timeout 5, got %d", cfg.TimeoutSeconds)
	}
}

func TestResolveConfig_RejectsBadOverride(t *testing.T) {
	if err := rootCmd.Flags().Set("workers", "0"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { _ = rootCmd.Flags().Set("workers", "4") })

	if _, err := resolveConfig(rootCmd); err == nil {
		t.Fatal("want validation error for workers=0, got nil")
	}
}
