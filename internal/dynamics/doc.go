// Package dynamics provides local stability analysis for small teaching
// systems of ordinary differential equations.
//
// The package defines the [System] interface for autonomous ODEs
// (dX/dt = f(X)) together with the classroom models built on it:
//
//   - [Logistic]: dN/dt = rN(1 - N/K)
//   - [Exponential]: dN/dt = rN
//   - [HarvestedLogistic]: logistic growth with constant offtake
//   - [PredatorPrey]: dx/dt = Ax - Bxy, dy/dt = Cx - Dy
//
// # Stability Analysis
//
// Fixed points are located analytically (or refined by Newton iteration),
// linearized through the Jacobian, and classified by eigenvalue:
//
//	fps, _ := dynamics.Analyze(sys)
//	for _, fp := range fps {
//	    fmt.Println(fp.State, fp.Class)
//	}
//
// A negative real part on every eigenvalue means the point is locally
// stable; a nonzero imaginary part means the approach is oscillatory.
package dynamics
