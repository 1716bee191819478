package integrators

import (
	"math"
	"testing"

	"github.com/clobos/statlab/internal/dynamics"
)

// oscillator is dX/dt = (v, -x), whose solution is a circle.
type oscillator struct{}

func (o *oscillator) Name() string     { return "oscillator" }
func (o *oscillator) StateDim() int    { return 2 }
func (o *oscillator) Labels() []string { return []string{"x", "v"} }
func (o *oscillator) Derive(x dynamics.State) dynamics.State {
	return dynamics.State{x[1], -x[0]}
}

func TestRK4Accuracy(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK4()

	x := dynamics.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	sys := &oscillator{}
	integ := NewEuler()

	x := dynamics.State{1.0, 0.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, dt)
	}

	expectedX := math.Cos(1.0)
	if math.Abs(x[0]-expectedX) > 1e-2 {
		t.Errorf("euler drifted too far: got %.6f, expected %.6f", x[0], expectedX)
	}
}

func TestRK4MoreAccurateThanEuler(t *testing.T) {
	sys := &oscillator{}
	dt := 0.05
	steps := 200

	xe := dynamics.State{1.0, 0.0}
	xr := dynamics.State{1.0, 0.0}
	euler := NewEuler()
	rk4 := NewRK4()
	for i := 0; i < steps; i++ {
		xe = euler.Step(sys, xe, dt)
		xr = rk4.Step(sys, xr, dt)
	}

	exact := math.Cos(float64(steps) * dt)
	if math.Abs(xr[0]-exact) >= math.Abs(xe[0]-exact) {
		t.Errorf("rk4 error %.6g should beat euler error %.6g",
			math.Abs(xr[0]-exact), math.Abs(xe[0]-exact))
	}
}
