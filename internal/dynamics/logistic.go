package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Logistic is density-dependent population growth dN/dt = rN(1 - N/K).
type Logistic struct {
	R float64 // intrinsic growth rate
	K float64 // carrying capacity
}

func NewLogistic() *Logistic {
	return &Logistic{R: 1.0, K: 10.0}
}

func (l *Logistic) Name() string     { return "logistic" }
func (l *Logistic) StateDim() int    { return 1 }
func (l *Logistic) Labels() []string { return []string{"N"} }

func (l *Logistic) Derive(x State) State {
	n := x[0]
	return State{l.R * n * (1 - n/l.K)}
}

// FixedPoints are N=0 and N=K.
func (l *Logistic) FixedPoints() []State {
	return []State{{0}, {l.K}}
}

// JacobianAt is the 1x1 matrix df/dN = r(1 - 2N/K).
func (l *Logistic) JacobianAt(x State) *mat.Dense {
	return mat.NewDense(1, 1, []float64{l.R * (1 - 2*x[0]/l.K)})
}

func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{"r": l.R, "k": l.K}
}

func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "r":
		l.R = value
	case "k":
		l.K = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Exponential is unbounded growth or decay dN/dt = rN.
type Exponential struct {
	R float64
}

func NewExponential() *Exponential { return &Exponential{R: 0.5} }

func (e *Exponential) Name() string     { return "exponential" }
func (e *Exponential) StateDim() int    { return 1 }
func (e *Exponential) Labels() []string { return []string{"N"} }

func (e *Exponential) Derive(x State) State { return State{e.R * x[0]} }

func (e *Exponential) FixedPoints() []State { return []State{{0}} }

func (e *Exponential) JacobianAt(x State) *mat.Dense {
	return mat.NewDense(1, 1, []float64{e.R})
}

func (e *Exponential) GetParams() map[string]float64 {
	return map[string]float64{"r": e.R}
}

func (e *Exponential) SetParam(name string, value float64) error {
	if name != "r" {
		return fmt.Errorf("unknown param: %s", name)
	}
	e.R = value
	return nil
}
