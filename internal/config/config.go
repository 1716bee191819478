package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 20.0
	DefaultLevel    = 0.95
	DefaultSystem   = "logistic"
	DefaultDataset  = "surveys"
	DefaultSamples  = 200
)

type Config struct {
	Dataset    string       `yaml:"dataset"`
	System     string       `yaml:"system"`
	Integrator string       `yaml:"integrator"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	Level      float64      `yaml:"level"`
	InitState  []float64    `yaml:"init_state"`
	Window     WindowConfig `yaml:"window"`
	Samples    int          `yaml:"samples"`
}

// WindowConfig is the phase-plane viewing region.
type WindowConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Dataset:    DefaultDataset,
		System:     DefaultSystem,
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Level:      DefaultLevel,
		InitState:  []float64{0.5},
		Window:     WindowConfig{XMin: -0.2, XMax: 3, YMin: -0.5, YMax: 8},
		Samples:    DefaultSamples,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
