package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/log"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dataset.Samples != 10000 {
		t.Errorf("expected 10000 samples, got %d", cfg.Dataset.Samples)
	}
	if cfg.Dataset.Rate != 1.618 {
		t.Errorf("expected rate 1.618, got %f", cfg.Dataset.Rate)
	}
	if cfg.Sweep.Min != chaos.SqrtTwo || cfg.Sweep.Max != chaos.GoldenRatio {
		t.Errorf("expected sweep over the chaotic window, got [%f, %f]", cfg.Sweep.Min, cfg.Sweep.Max)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("expected format csv, got %s", cfg.Output.Format)
	}
	if err := ValidateStruct(cfg); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("dataset:\n  samples: 500\n  rate: 1.5\noutput:\n  bins: 40\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dataset.Samples != 500 {
		t.Errorf("expected 500 samples, got %d", cfg.Dataset.Samples)
	}
	if cfg.Dataset.Rate != 1.5 {
		t.Errorf("expected rate 1.5, got %f", cfg.Dataset.Rate)
	}
	if cfg.Dataset.Depth != 40 {
		t.Errorf("expected default depth 40, got %d", cfg.Dataset.Depth)
	}
	if cfg.Output.Bins != 40 {
		t.Errorf("expected 40 bins, got %d", cfg.Output.Bins)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("expected default format csv, got %s", cfg.Output.Format)
	}
	if cfg.Sweep.Steps != DefaultSweepSteps {
		t.Errorf("expected default sweep steps, got %d", cfg.Sweep.Steps)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("dataset:\n  samples: -3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for negative samples")
	}
	if !strings.Contains(err.Error(), "Samples") {
		t.Errorf("expected error to name the Samples field, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Dataset.Seed = 99
	cfg.Dataset.Depth = 12
	cfg.Output.DataDir = "runs"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Dataset.Seed != 99 {
		t.Errorf("expected seed 99, got %d", loaded.Dataset.Seed)
	}
	if loaded.Dataset.Depth != 12 {
		t.Errorf("expected depth 12, got %d", loaded.Dataset.Depth)
	}
	if loaded.Output.DataDir != "runs" {
		t.Errorf("expected data dir runs, got %s", loaded.Output.DataDir)
	}
}

func TestInWindow(t *testing.T) {
	tests := []struct {
		rate float64
		want bool
	}{
		{1.618, true},
		{chaos.SqrtTwo, true},
		{chaos.GoldenRatio, true},
		{1.3, false},
		{2.0, false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Dataset.Rate = tt.rate
		if got := cfg.InWindow(); got != tt.want {
			t.Errorf("rate %f: expected InWindow %v, got %v", tt.rate, tt.want, got)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Samples != 1000 {
		t.Errorf("expected 1000 samples, got %d", cfg.Samples)
	}

	cfg.Samples = 7
	again := GetPreset("quick")
	if again.Samples != 1000 {
		t.Error("mutating a returned preset should not change the registry")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}

	found := false
	for _, name := range names {
		if name == "reference" {
			found = true
		}
	}
	if !found {
		t.Error("expected a reference preset")
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("CHAOSGEN_LOG_LEVEL", "")
	t.Setenv("CHAOSGEN_LOG_FORMAT", "")
	t.Setenv("CHAOSGEN_DATA_DIR", "")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Log.Level != log.LevelInfo {
		t.Errorf("expected level info, got %s", env.Log.Level)
	}
	if env.Log.Format != log.FormatConsole {
		t.Errorf("expected format console, got %s", env.Log.Format)
	}
	if env.DataDir != "data" {
		t.Errorf("expected data dir data, got %s", env.DataDir)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("CHAOSGEN_LOG_LEVEL", "debug")
	t.Setenv("CHAOSGEN_LOG_FORMAT", "json")
	t.Setenv("CHAOSGEN_DATA_DIR", "/tmp/chaos")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Log.Level != log.LevelDebug {
		t.Errorf("expected level debug, got %s", env.Log.Level)
	}
	if env.Log.Format != log.FormatJSON {
		t.Errorf("expected format json, got %s", env.Log.Format)
	}
	if env.DataDir != "/tmp/chaos" {
		t.Errorf("expected data dir /tmp/chaos, got %s", env.DataDir)
	}
}

func TestLoadEnv_RejectsUnknownLevel(t *testing.T) {
	t.Setenv("CHAOSGEN_LOG_LEVEL", "loud")
	t.Setenv("CHAOSGEN_LOG_FORMAT", "")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
	if !strings.Contains(err.Error(), "Level") {
		t.Errorf("expected error to name the Level field, got %v", err)
	}
}
