package dynamics

import "math"

// Stability is the local character of a fixed point.
type Stability string

const (
	StableNode     Stability = "stable node"
	UnstableNode   Stability = "unstable node"
	Saddle         Stability = "saddle"
	StableSpiral   Stability = "stable spiral"
	UnstableSpiral Stability = "unstable spiral"
	Center         Stability = "center"
	Marginal       Stability = "marginal"
)

const eigenTol = 1e-9

// Classify reads the local character off the linearization's eigenvalues.
// For a 1-D system the single eigenvalue's sign decides; for 2-D, complex
// eigenvalues give spirals or a center, real ones nodes or a saddle.
func Classify(eigs []complex128) Stability {
	if len(eigs) == 1 {
		r := real(eigs[0])
		switch {
		case r < -eigenTol:
			return StableNode
		case r > eigenTol:
			return UnstableNode
		default:
			return Marginal
		}
	}

	complexPair := false
	for _, e := range eigs {
		if math.Abs(imag(e)) > eigenTol {
			complexPair = true
			break
		}
	}

	if complexPair {
		r := real(eigs[0])
		switch {
		case r < -eigenTol:
			return StableSpiral
		case r > eigenTol:
			return UnstableSpiral
		default:
			return Center
		}
	}

	neg, pos := 0, 0
	for _, e := range eigs {
		switch r := real(e); {
		case r < -eigenTol:
			neg++
		case r > eigenTol:
			pos++
		}
	}
	switch {
	case neg > 0 && pos > 0:
		return Saddle
	case pos == 0 && neg == len(eigs):
		return StableNode
	case neg == 0 && pos == len(eigs):
		return UnstableNode
	default:
		return Marginal
	}
}

// Stable reports whether trajectories near the point converge to it.
func (s Stability) Stable() bool {
	return s == StableNode || s == StableSpiral
}

// Oscillatory reports whether the linearized approach rotates, i.e. the
// eigenvalues have a nonzero imaginary part.
func Oscillatory(eigs []complex128) bool {
	for _, e := range eigs {
		if math.Abs(imag(e)) > eigenTol {
			return true
		}
	}
	return false
}
