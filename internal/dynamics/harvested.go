package dynamics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// HarvestedLogistic is logistic growth with a constant offtake:
// dN/dt = rN(1 - N/K) - H.
type HarvestedLogistic struct {
	R float64
	K float64
	H float64 // harvest rate
}

func NewHarvestedLogistic() *HarvestedLogistic {
	return &HarvestedLogistic{R: 1.0, K: 10.0, H: 1.0}
}

func (h *HarvestedLogistic) Name() string     { return "harvested" }
func (h *HarvestedLogistic) StateDim() int    { return 1 }
func (h *HarvestedLogistic) Labels() []string { return []string{"N"} }

func (h *HarvestedLogistic) Derive(x State) State {
	n := x[0]
	return State{h.R*n*(1-n/h.K) - h.H}
}

// FixedPoints solves rN(1-N/K) = H. Above the maximum sustainable yield
// rK/4 there are no equilibria and the population collapses.
func (h *HarvestedLogistic) FixedPoints() []State {
	// -r/K N^2 + r N - H = 0
	disc := h.R*h.R - 4*h.R*h.H/h.K
	if disc < 0 {
		return nil
	}
	s := math.Sqrt(disc)
	lo := (h.R - s) / (2 * h.R / h.K)
	hi := (h.R + s) / (2 * h.R / h.K)
	if disc == 0 {
		return []State{{lo}}
	}
	return []State{{lo}, {hi}}
}

func (h *HarvestedLogistic) JacobianAt(x State) *mat.Dense {
	return mat.NewDense(1, 1, []float64{h.R * (1 - 2*x[0]/h.K)})
}

func (h *HarvestedLogistic) GetParams() map[string]float64 {
	return map[string]float64{"r": h.R, "k": h.K, "h": h.H}
}

func (h *HarvestedLogistic) SetParam(name string, value float64) error {
	switch name {
	case "r":
		h.R = value
	case "k":
		h.K = value
	case "h":
		h.H = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
