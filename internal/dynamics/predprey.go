package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PredatorPrey couples prey x and predator y:
//
//	dx/dt = Ax - Bxy
//	dy/dt = Cx - Dy
//
// Prey grow at rate A and are eaten at rate Bxy; predators recruit in
// proportion to the prey available and die at rate D.
type PredatorPrey struct {
	A float64 // prey growth rate
	B float64 // predation rate
	C float64 // predator recruitment
	D float64 // predator mortality
}

func NewPredatorPrey() *PredatorPrey {
	return &PredatorPrey{A: 5, B: 1, C: 1, D: 0.2}
}

func (p *PredatorPrey) Name() string     { return "predprey" }
func (p *PredatorPrey) StateDim() int    { return 2 }
func (p *PredatorPrey) Labels() []string { return []string{"prey", "predator"} }

func (p *PredatorPrey) Derive(s State) State {
	x, y := s[0], s[1]
	return State{
		p.A*x - p.B*x*y,
		p.C*x - p.D*y,
	}
}

// FixedPoints are the origin and the coexistence point (AD/BC, A/B).
func (p *PredatorPrey) FixedPoints() []State {
	return []State{
		{0, 0},
		{p.A * p.D / (p.B * p.C), p.A / p.B},
	}
}

// JacobianAt is the matrix of partials
//
//	[ A - By   -Bx ]
//	[ C        -D  ]
func (p *PredatorPrey) JacobianAt(s State) *mat.Dense {
	x, y := s[0], s[1]
	return mat.NewDense(2, 2, []float64{
		p.A - p.B*y, -p.B * x,
		p.C, -p.D,
	})
}

// Nullclines returns, per state variable, the lines where its rate
// vanishes, as sampled x values mapped to y. The prey rate is zero on x=0
// and on y=A/B; the predator rate is zero on y=Cx/D.
func (p *PredatorPrey) Nullclines() []NullclineFunc {
	return []NullclineFunc{
		{Var: 0, Label: "dx/dt=0", Y: func(x float64) float64 { return p.A / p.B }},
		{Var: 1, Label: "dy/dt=0", Y: func(x float64) float64 { return p.C * x / p.D }},
	}
}

func (p *PredatorPrey) GetParams() map[string]float64 {
	return map[string]float64{"a": p.A, "b": p.B, "c": p.C, "d": p.D}
}

func (p *PredatorPrey) SetParam(name string, value float64) error {
	switch name {
	case "a":
		p.A = value
	case "b":
		p.B = value
	case "c":
		p.C = value
	case "d":
		p.D = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
