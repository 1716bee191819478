package analysis

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/clobos/statlab/internal/dynamics"
	"github.com/clobos/statlab/internal/integrators"
)

func TestSimulateLogisticApproachesK(t *testing.T) {
	sys := dynamics.NewLogistic()
	res, err := Simulate(context.Background(), sys, integrators.NewRK4(),
		dynamics.State{0.5}, Config{Dt: 0.01, Duration: 30})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if len(res.States) != 3001 {
		t.Errorf("expected 3001 samples, got %d", len(res.States))
	}
	final := res.States[len(res.States)-1][0]
	if math.Abs(final-sys.K) > 1e-3 {
		t.Errorf("trajectory should settle at K=%v, got %v", sys.K, final)
	}

	// Logistic growth from below K is monotone.
	series := res.Series(0)
	for i := 1; i < len(series); i++ {
		if series[i] < series[i-1] {
			t.Fatalf("trajectory decreased at step %d", i)
		}
	}
}

func TestSimulateValidation(t *testing.T) {
	sys := dynamics.NewLogistic()
	if _, err := Simulate(context.Background(), sys, integrators.NewRK4(),
		dynamics.State{1}, Config{Dt: -1, Duration: 1}); err == nil {
		t.Error("expected error for negative dt")
	}
	if _, err := Simulate(context.Background(), sys, integrators.NewRK4(),
		dynamics.State{1, 2}, Config{Dt: 0.01, Duration: 1}); err == nil {
		t.Error("expected dimension error")
	}
}

func TestSimulateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sys := dynamics.NewLogistic()
	_, err := Simulate(ctx, sys, integrators.NewRK4(),
		dynamics.State{0.5}, Config{Dt: 0.01, Duration: 10})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type blowup struct{}

func (b *blowup) Name() string     { return "blowup" }
func (b *blowup) StateDim() int    { return 1 }
func (b *blowup) Labels() []string { return []string{"x"} }
func (b *blowup) Derive(x dynamics.State) dynamics.State {
	return dynamics.State{x[0] * x[0]}
}

func TestSimulateStopsOnDivergence(t *testing.T) {
	// dx/dt = x^2 from x=1 blows up at t=1.
	res, err := Simulate(context.Background(), &blowup{}, integrators.NewEuler(),
		dynamics.State{1}, Config{Dt: 0.01, Duration: 5})
	if err == nil {
		t.Fatal("expected divergence error")
	}
	if len(res.States) == 0 {
		t.Error("partial trajectory should be returned")
	}
}

func TestGeneratePortrait(t *testing.T) {
	sys := dynamics.NewPredatorPrey()
	win := dynamics.Window{XMin: -0.2, XMax: 3, YMin: -0.5, YMax: 8}

	p, err := GeneratePortrait(context.Background(), sys, integrators.NewRK4(),
		[]dynamics.State{{2, 2}}, win, Config{Dt: 0.005, Duration: 10})
	if err != nil {
		t.Fatalf("portrait: %v", err)
	}

	if len(p.Trajectories) != 1 || len(p.Trajectories[0]) == 0 {
		t.Fatal("portrait should hold the simulated trajectory")
	}
	if len(p.Nullclines) != 2 {
		t.Errorf("expected 2 nullclines, got %d", len(p.Nullclines))
	}
	if len(p.FixedPoints) != 2 {
		t.Errorf("expected both fixed points inside the window, got %d", len(p.FixedPoints))
	}

	art := p.ASCII(60, 20)
	if art == "" {
		t.Fatal("ascii render is empty")
	}
	for _, marker := range []string{"•", "·", "@", "o"} {
		if !strings.Contains(art, marker) {
			t.Errorf("render missing %q marker", marker)
		}
	}
}

func TestPortraitRejectsInvalidConfig(t *testing.T) {
	sys := dynamics.NewPredatorPrey()
	win := dynamics.Window{XMin: -0.2, XMax: 3, YMin: -0.5, YMax: 8}

	// A zero timestep must surface as the validation error, not a crash.
	_, err := GeneratePortrait(context.Background(), sys, integrators.NewRK4(),
		[]dynamics.State{{2, 2}}, win, Config{Dt: 0, Duration: 10})
	if err == nil {
		t.Fatal("expected error for zero dt")
	}

	// Same for an initial condition of the wrong dimension.
	_, err = GeneratePortrait(context.Background(), sys, integrators.NewRK4(),
		[]dynamics.State{{2}}, win, Config{Dt: 0.01, Duration: 1})
	if err != dynamics.ErrDimension {
		t.Errorf("expected ErrDimension, got %v", err)
	}
}

func TestPortraitRejectsScalarSystems(t *testing.T) {
	sys := dynamics.NewLogistic()
	_, err := GeneratePortrait(context.Background(), sys, integrators.NewRK4(),
		[]dynamics.State{{1}}, dynamics.Window{XMax: 1, YMax: 1}, Config{Dt: 0.01, Duration: 1})
	if err != dynamics.ErrDimension {
		t.Errorf("expected ErrDimension, got %v", err)
	}
}

func TestEquilibriumSweep(t *testing.T) {
	sys := dynamics.NewHarvestedLogistic()
	points, err := EquilibriumSweep(sys, "h", 0.5, 3.0, 6)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("expected 6 sweep points, got %d", len(points))
	}
	// Two equilibria below the maximum sustainable yield rK/4 = 2.5, none above.
	if len(points[0].Points) != 2 {
		t.Errorf("h=0.5 should have 2 equilibria, got %d", len(points[0].Points))
	}
	if len(points[5].Points) != 0 {
		t.Errorf("h=3.0 should have no equilibria, got %d", len(points[5].Points))
	}
	// The sweep must restore the original parameter.
	if sys.H != 1.0 {
		t.Errorf("sweep should restore h=1.0, got %v", sys.H)
	}
}
