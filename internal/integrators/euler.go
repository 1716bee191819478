package integrators

import "github.com/clobos/statlab/internal/dynamics"

// Stepper advances a system state by one timestep.
type Stepper interface {
	Step(sys dynamics.System, x dynamics.State, dt float64) dynamics.State
}

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamics.System, x dynamics.State, dt float64) dynamics.State {
	dx := sys.Derive(x)
	result := make(dynamics.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
