package dynamics

import (
	"gonum.org/v1/gonum/mat"
)

const jacobianStep = 1e-6

// Jacobian evaluates the matrix of first partials of f at x, preferring a
// system's analytic form and falling back to central differences.
func Jacobian(sys System, x State) *mat.Dense {
	if j, ok := sys.(Jacobianer); ok {
		return j.JacobianAt(x)
	}
	return NumericJacobian(sys, x, jacobianStep)
}

// NumericJacobian approximates the Jacobian at x by central differences
// with step h in each coordinate.
func NumericJacobian(sys System, x State, h float64) *mat.Dense {
	n := sys.StateDim()
	j := mat.NewDense(n, n, nil)
	for c := 0; c < n; c++ {
		hi := x.Clone()
		lo := x.Clone()
		hi[c] += h
		lo[c] -= h
		fhi := sys.Derive(hi)
		flo := sys.Derive(lo)
		for r := 0; r < n; r++ {
			j.Set(r, c, (fhi[r]-flo[r])/(2*h))
		}
	}
	return j
}

// Eigen holds the eigenvalues and right eigenvectors of a Jacobian.
type Eigen struct {
	Values  []complex128
	Vectors *mat.CDense
}

// Eigenvalues factorizes a square real matrix.
func Eigenvalues(m *mat.Dense) (*Eigen, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	return &Eigen{Values: eig.Values(nil), Vectors: &vecs}, nil
}
