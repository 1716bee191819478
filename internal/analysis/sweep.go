package analysis

import (
	"fmt"

	"github.com/clobos/statlab/internal/dynamics"
)

// EquilibriumPoint records the fixed points found at one parameter value.
type EquilibriumPoint struct {
	Param  float64
	Points []dynamics.FixedPoint
}

// EquilibriumSweep varies one named parameter across a range and records
// how the fixed points move and change stability. Useful for showing, for
// instance, the two logistic equilibria colliding as harvest pressure
// rises.
func EquilibriumSweep(sys dynamics.System, param string, min, max float64, steps int) ([]EquilibriumPoint, error) {
	tunable, ok := sys.(dynamics.Parameterized)
	if !ok {
		return nil, fmt.Errorf("analysis: %s has no tunable parameters", sys.Name())
	}
	orig, hasOrig := tunable.GetParams()[param]
	if !hasOrig {
		return nil, fmt.Errorf("analysis: %s has no param %q", sys.Name(), param)
	}
	defer tunable.SetParam(param, orig)

	if steps < 2 {
		steps = 2
	}
	dp := (max - min) / float64(steps-1)

	out := make([]EquilibriumPoint, 0, steps)
	for i := 0; i < steps; i++ {
		v := min + float64(i)*dp
		if err := tunable.SetParam(param, v); err != nil {
			return nil, err
		}
		fps, err := dynamics.Analyze(sys)
		if err != nil {
			// No equilibria at this parameter value is itself a finding.
			fps = nil
		}
		out = append(out, EquilibriumPoint{Param: v, Points: fps})
	}
	return out, nil
}
