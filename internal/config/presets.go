package config

var Presets = map[string]map[string]*Config{
	"logistic": {
		"sparse": {
			System: "logistic", Integrator: "rk4", Dt: 0.05, Duration: 12.0,
			InitState: []float64{0.5},
		},
		"overshoot": {
			System: "logistic", Integrator: "rk4", Dt: 0.05, Duration: 12.0,
			InitState: []float64{18.0},
		},
	},
	"harvested": {
		"sustainable": {
			System: "harvested", Integrator: "rk4", Dt: 0.05, Duration: 25.0,
			InitState: []float64{8.0},
		},
		"collapse": {
			System: "harvested", Integrator: "rk4", Dt: 0.05, Duration: 25.0,
			InitState: []float64{1.0},
		},
	},
	"predprey": {
		"spiral": {
			System: "predprey", Integrator: "rk4", Dt: 0.005, Duration: 20.0,
			InitState: []float64{2.0, 2.0},
			Window:    WindowConfig{XMin: -0.2, XMax: 3, YMin: -0.5, YMax: 8},
		},
		"invasion": {
			System: "predprey", Integrator: "rk4", Dt: 0.005, Duration: 30.0,
			InitState: []float64{0.05, 0.05},
			Window:    WindowConfig{XMin: -0.2, XMax: 4, YMin: -0.5, YMax: 9},
		},
	},
	"exponential": {
		"growth": {
			System: "exponential", Integrator: "rk4", Dt: 0.05, Duration: 10.0,
			InitState: []float64{1.0},
		},
	},
}

func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
