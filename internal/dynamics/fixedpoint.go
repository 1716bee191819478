package dynamics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	newtonMaxIter = 50
	newtonTol     = 1e-10
)

// FixedPoint is an equilibrium with its linearization.
type FixedPoint struct {
	State       State
	Jacobian    *mat.Dense
	Eigenvalues []complex128
	Class       Stability
}

func (fp FixedPoint) String() string {
	return fmt.Sprintf("%v: %s", []float64(fp.State), fp.Class)
}

// Analyze locates a system's fixed points and classifies each one. Systems
// with closed-form equilibria supply candidates directly; every candidate
// is verified (and refined if needed) by Newton iteration before the
// Jacobian is taken.
func Analyze(sys System) ([]FixedPoint, error) {
	fp, ok := sys.(FixedPointer)
	if !ok {
		return nil, fmt.Errorf("dynamics: %s does not expose fixed points", sys.Name())
	}
	out := make([]FixedPoint, 0)
	for _, cand := range fp.FixedPoints() {
		x, err := Refine(sys, cand)
		if err != nil {
			return nil, fmt.Errorf("refine %v: %w", []float64(cand), err)
		}
		j := Jacobian(sys, x)
		eig, err := Eigenvalues(j)
		if err != nil {
			return nil, err
		}
		out = append(out, FixedPoint{
			State:       x,
			Jacobian:    j,
			Eigenvalues: eig.Values,
			Class:       Classify(eig.Values),
		})
	}
	return out, nil
}

// Refine polishes a fixed point candidate by Newton iteration,
// x <- x - J^-1 f(x). A candidate already at equilibrium passes through
// unchanged.
func Refine(sys System, x0 State) (State, error) {
	x := x0.Clone()
	for iter := 0; iter < newtonMaxIter; iter++ {
		f := sys.Derive(x)
		if norm(f) < newtonTol {
			return x, nil
		}
		j := Jacobian(sys, x)
		step, err := solveStep(j, f)
		if err != nil {
			return nil, err
		}
		for i := range x {
			x[i] -= step[i]
		}
		if !x.IsValid() {
			return nil, ErrNoFixedPoint
		}
	}
	if norm(sys.Derive(x)) < math.Sqrt(newtonTol) {
		return x, nil
	}
	return nil, ErrNoFixedPoint
}

func solveStep(j *mat.Dense, f State) (State, error) {
	n := len(f)
	b := mat.NewDense(n, 1, append([]float64(nil), f...))
	var s mat.Dense
	if err := s.Solve(j, b); err != nil {
		return nil, fmt.Errorf("singular jacobian in newton step: %w", err)
	}
	out := make(State, n)
	for i := 0; i < n; i++ {
		out[i] = s.At(i, 0)
	}
	return out, nil
}

func norm(x State) float64 {
	s := 0.0
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s)
}
