package analysis

import (
	"context"
	"fmt"

	"github.com/clobos/statlab/internal/dynamics"
	"github.com/clobos/statlab/internal/integrators"
)

// Config controls a trajectory run.
type Config struct {
	Dt       float64
	Duration float64
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	return nil
}

// Result is a sampled trajectory.
type Result struct {
	Labels []string
	Times  []float64
	States []dynamics.State
}

// Series extracts one state variable as a plain slice.
func (r *Result) Series(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[idx]
	}
	return out
}

// Simulate integrates a system from x0 with a fixed step, stopping early
// on cancellation or when the state goes NaN/Inf.
func Simulate(ctx context.Context, sys dynamics.System, step integrators.Stepper, x0 dynamics.State, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(x0) != sys.StateDim() {
		return nil, dynamics.ErrDimension
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Labels: sys.Labels(),
		Times:  make([]float64, 0, steps+1),
		States: make([]dynamics.State, 0, steps+1),
	}

	x := x0.Clone()
	t := 0.0
	result.Times = append(result.Times, t)
	result.States = append(result.States, x.Clone())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		x = step.Step(sys, x, cfg.Dt)
		t += cfg.Dt

		if !x.IsValid() {
			return result, fmt.Errorf("invalid state (NaN/Inf) at t=%.4f", t)
		}

		result.Times = append(result.Times, t)
		result.States = append(result.States, x.Clone())
	}

	return result, nil
}
