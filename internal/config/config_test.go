package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, "port: COM3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "COM3" {
		t.Fatalf("port=%q want COM3", cfg.Port)
	}
	if cfg.Baud != 9600 {
		t.Fatalf("baud=%d want 9600", cfg.Baud)
	}
	if cfg.BaseReadings != 50 {
		t.Fatalf("base_readings=%d want 50", cfg.BaseReadings)
	}
	if cfg.LogDir != "logs" {
		t.Fatalf("log_dir=%q want logs", cfg.LogDir)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeTempConfig(t, "port: /dev/ttyACM0\nbaud: 38400\nbase_readings: 10\nlog_dir: flights\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "/dev/ttyACM0" || cfg.Baud != 38400 || cfg.BaseReadings != 10 || cfg.LogDir != "flights" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoad_RejectsBadBaud(t *testing.T) {
	path := writeTempConfig(t, "baud: -1\n")
	_, err := Load(path)
	requireErrEq(t, err, "baud must be > 0")
}

func TestLoad_RejectsBadBaseReadings(t *testing.T) {
	// An explicit zero overrides the default and must be rejected.
	path := writeTempConfig(t, "base_readings: 0\n")
	_, err := Load(path)
	requireErrEq(t, err, "base_readings must be > 0")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
