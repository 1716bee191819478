package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dt != DefaultDt {
		t.Errorf("dt = %v, want %v", cfg.Dt, DefaultDt)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("duration = %v, want %v", cfg.Duration, DefaultDuration)
	}
	if cfg.Level != DefaultLevel {
		t.Errorf("level = %v, want %v", cfg.Level, DefaultLevel)
	}
	if cfg.System != "logistic" || cfg.Dataset != "surveys" {
		t.Errorf("unexpected defaults: system=%s dataset=%s", cfg.System, cfg.Dataset)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("integrator = %s, want rk4", cfg.Integrator)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statlab.yaml")

	cfg := DefaultConfig()
	cfg.System = "predprey"
	cfg.Dt = 0.005
	cfg.InitState = []float64{2, 2}
	cfg.Window = WindowConfig{XMin: -0.2, XMax: 3, YMin: -0.5, YMax: 8}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.System != "predprey" {
		t.Errorf("system = %s, want predprey", loaded.System)
	}
	if loaded.Dt != 0.005 {
		t.Errorf("dt = %v, want 0.005", loaded.Dt)
	}
	if len(loaded.InitState) != 2 || loaded.InitState[0] != 2 || loaded.InitState[1] != 2 {
		t.Errorf("init state = %v, want [2 2]", loaded.InitState)
	}
	if loaded.Window.YMax != 8 {
		t.Errorf("window ymax = %v, want 8", loaded.Window.YMax)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("system: harvested\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.System != "harvested" {
		t.Errorf("system = %s, want harvested", cfg.System)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("unset dt should fall back to default, got %v", cfg.Dt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("predprey", "spiral")
	if cfg == nil {
		t.Fatal("preset predprey/spiral should exist")
	}
	if cfg.System != "predprey" || cfg.Dt != 0.005 {
		t.Errorf("unexpected preset values: %+v", cfg)
	}
	if GetPreset("predprey", "nope") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("nope", "spiral") != nil {
		t.Error("unknown system should return nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("logistic")
	if len(names) != 2 {
		t.Errorf("expected 2 logistic presets, got %d", len(names))
	}
	if ListPresets("nope") != nil {
		t.Error("unknown system should list nothing")
	}
}
