package setup

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	cfg := LoadConfig()
	if cfg.InputDir != "inputs" {
		t.Errorf("InputDir = %q; want %q", cfg.InputDir, "inputs")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "/data/puzzles")
	t.Setenv("AOC_LOG_LEVEL", "debug")

	cfg := LoadConfig()
	if cfg.InputDir != "/data/puzzles" {
		t.Errorf("InputDir = %q; want %q", cfg.InputDir, "/data/puzzles")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}
}
