// Package experiment wires names from the CLI and config files to
// concrete systems and integrators.
package experiment

import (
	"fmt"
	"sort"

	"github.com/clobos/statlab/internal/dynamics"
	"github.com/clobos/statlab/internal/integrators"
)

type Registry struct {
	systems  map[string]func() dynamics.System
	steppers map[string]func() integrators.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		systems:  make(map[string]func() dynamics.System),
		steppers: make(map[string]func() integrators.Stepper),
	}

	r.systems["logistic"] = func() dynamics.System { return dynamics.NewLogistic() }
	r.systems["exponential"] = func() dynamics.System { return dynamics.NewExponential() }
	r.systems["harvested"] = func() dynamics.System { return dynamics.NewHarvestedLogistic() }
	r.systems["predprey"] = func() dynamics.System { return dynamics.NewPredatorPrey() }

	r.steppers["euler"] = func() integrators.Stepper { return integrators.NewEuler() }
	r.steppers["rk4"] = func() integrators.Stepper { return integrators.NewRK4() }

	return r
}

func (r *Registry) GetSystem(name string) (dynamics.System, error) {
	fn, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("unknown system %q (have %v)", name, r.ListSystems())
	}
	return fn(), nil
}

func (r *Registry) GetStepper(name string) (integrators.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListSystems() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
