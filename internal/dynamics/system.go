package dynamics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Domain errors for analysis operations.
var (
	// ErrNoFixedPoint indicates Newton refinement failed to converge.
	ErrNoFixedPoint = errors.New("dynamics: fixed point search did not converge")

	// ErrDimension indicates an operation needs a different state dimension.
	ErrDimension = errors.New("dynamics: wrong state dimension")

	// ErrEigenFailed indicates the eigenvalue factorization did not converge.
	ErrEigenFailed = errors.New("dynamics: eigenvalue factorization failed")
)

// State is a point in phase space.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an autonomous ODE dX/dt = f(X).
type System interface {
	Name() string
	Derive(x State) State
	StateDim() int
	Labels() []string
}

// FixedPointer is implemented by systems whose fixed points are known in
// closed form.
type FixedPointer interface {
	FixedPoints() []State
}

// Jacobianer is implemented by systems with an analytic Jacobian.
type Jacobianer interface {
	JacobianAt(x State) *mat.Dense
}

// Parameterized mirrors the parameter access shape used by the simulators:
// a name/value map out, single named sets in.
type Parameterized interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
