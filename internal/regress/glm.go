package regress

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"github.com/clobos/statlab/internal/dataset"
	"github.com/clobos/statlab/internal/stats"
)

// Family selects the response distribution and link of a GLM.
type Family string

const (
	Gaussian Family = "gaussian" // identity link, equivalent to OLS
	Binomial Family = "binomial" // logit link
)

const (
	irlsMaxIter = 50
	irlsTol     = 1e-8
)

// GLM is a generalized linear model fit.
type GLM struct {
	Family       Family
	Response     string
	Coefficients []Coefficient
	Deviance     float64
	NullDeviance float64
	Iterations   int
	DF           int

	design *Design
}

// FitGLM fits response ~ predictors under the given family. The gaussian
// family reduces to ordinary least squares; the binomial family fits a
// logistic regression by iteratively reweighted least squares.
func FitGLM(tbl *dataset.Table, response string, predictors []string, fam Family) (*GLM, error) {
	d, err := NewDesign(tbl, response, predictors)
	if err != nil {
		return nil, err
	}

	switch fam {
	case Gaussian:
		lm, err := fitDesign(d)
		if err != nil {
			return nil, err
		}
		dev := lm.ResidualSE * lm.ResidualSE * float64(lm.DF)
		return &GLM{
			Family:       Gaussian,
			Response:     response,
			Coefficients: lm.Coefficients,
			Deviance:     dev,
			DF:           lm.DF,
			design:       d,
		}, nil
	case Binomial:
		return fitBinomial(d)
	default:
		return nil, fmt.Errorf("unknown family %q", fam)
	}
}

func fitBinomial(d *Design) (*GLM, error) {
	n, p := d.NRows(), d.NTerms()
	for _, y := range d.Y {
		if y != 0 && y != 1 {
			return nil, fmt.Errorf("binomial family needs a 0/1 response, got %g", y)
		}
	}

	beta := make([]float64, p)
	dev := math.Inf(1)
	iters := 0

	w := make([]float64, n)
	z := make([]float64, n)

	for iter := 0; iter < irlsMaxIter; iter++ {
		iters = iter + 1
		// Working response and weights at the current linear predictor.
		for i := 0; i < n; i++ {
			eta := 0.0
			for j := 0; j < p; j++ {
				eta += d.X.At(i, j) * beta[j]
			}
			mu := sigmoid(eta)
			// Clamp away from the boundary so the working weight stays finite.
			if mu < 1e-10 {
				mu = 1e-10
			}
			if mu > 1-1e-10 {
				mu = 1 - 1e-10
			}
			wi := mu * (1 - mu)
			w[i] = wi
			z[i] = eta + (d.Y[i]-mu)/wi
		}

		next, err := weightedSolve(d.X, w, z)
		if err != nil {
			return nil, fmt.Errorf("fit %s: irls step failed: %w", d.Response, err)
		}
		copy(beta, next)

		newDev := binomialDeviance(d, beta)
		if math.Abs(dev-newDev) < irlsTol {
			dev = newDev
			break
		}
		dev = newDev
		if iter == irlsMaxIter-1 {
			return nil, fmt.Errorf("fit %s: irls did not converge in %d iterations", d.Response, irlsMaxIter)
		}
	}

	// Covariance of the estimates is (X'WX)^-1 at convergence.
	xtwxInv, err := weightedInfoInverse(d.X, w)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", d.Response, err)
	}

	g := &GLM{
		Family:     Binomial,
		Response:   d.Response,
		Deviance:   dev,
		Iterations: iters,
		DF:         n - p,
		design:     d,
	}
	for j := 0; j < p; j++ {
		se := math.Sqrt(xtwxInv.At(j, j))
		zstat := beta[j] / se
		g.Coefficients = append(g.Coefficients, Coefficient{
			Term:     d.Terms[j],
			Estimate: beta[j],
			StdErr:   se,
			Stat:     zstat,
			PValue:   stats.ZPValue(zstat),
		})
	}
	g.NullDeviance = nullBinomialDeviance(d)
	return g, nil
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func binomialDeviance(d *Design, beta []float64) float64 {
	n, p := d.NRows(), d.NTerms()
	dev := 0.0
	for i := 0; i < n; i++ {
		eta := 0.0
		for j := 0; j < p; j++ {
			eta += d.X.At(i, j) * beta[j]
		}
		mu := sigmoid(eta)
		if mu < 1e-10 {
			mu = 1e-10
		}
		if mu > 1-1e-10 {
			mu = 1 - 1e-10
		}
		if d.Y[i] == 1 {
			dev -= 2 * math.Log(mu)
		} else {
			dev -= 2 * math.Log(1-mu)
		}
	}
	return dev
}

func nullBinomialDeviance(d *Design) float64 {
	mu := stats.Mean(d.Y)
	if mu <= 0 || mu >= 1 {
		return 0
	}
	dev := 0.0
	for _, y := range d.Y {
		if y == 1 {
			dev -= 2 * math.Log(mu)
		} else {
			dev -= 2 * math.Log(1-mu)
		}
	}
	return dev
}

// weightedSolve solves the weighted least squares system for X'WX b = X'Wz.
func weightedSolve(x *mat.Dense, w, z []float64) ([]float64, error) {
	n, p := x.Dims()
	xtwx := mat.NewDense(p, p, nil)
	xtwz := mat.NewDense(p, 1, nil)
	for j := 0; j < p; j++ {
		for k := j; k < p; k++ {
			s := 0.0
			for i := 0; i < n; i++ {
				s += w[i] * x.At(i, j) * x.At(i, k)
			}
			xtwx.Set(j, k, s)
			xtwx.Set(k, j, s)
		}
		s := 0.0
		for i := 0; i < n; i++ {
			s += w[i] * x.At(i, j) * z[i]
		}
		xtwz.Set(j, 0, s)
	}
	var b mat.Dense
	if err := b.Solve(xtwx, xtwz); err != nil {
		return nil, err
	}
	out := make([]float64, p)
	for j := 0; j < p; j++ {
		out[j] = b.At(j, 0)
	}
	return out, nil
}

func weightedInfoInverse(x *mat.Dense, w []float64) (*mat.Dense, error) {
	n, p := x.Dims()
	xtwx := mat.NewDense(p, p, nil)
	for j := 0; j < p; j++ {
		for k := j; k < p; k++ {
			s := 0.0
			for i := 0; i < n; i++ {
				s += w[i] * x.At(i, j) * x.At(i, k)
			}
			xtwx.Set(j, k, s)
			xtwx.Set(k, j, s)
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(xtwx); err != nil {
		return nil, err
	}
	return &inv, nil
}

// PredictProb evaluates the fitted probability for the given term values
// under the binomial family, or the fitted mean under the gaussian one.
func (g *GLM) PredictProb(vals map[string]float64) float64 {
	eta := 0.0
	for _, c := range g.Coefficients {
		if c.Term == "(Intercept)" {
			eta += c.Estimate
			continue
		}
		eta += c.Estimate * vals[c.Term]
	}
	if g.Family == Binomial {
		return sigmoid(eta)
	}
	return eta
}

// ConfInt computes per-coefficient Wald intervals at the given level. The
// binomial family uses normal critical values, the gaussian family t ones.
func (g *GLM) ConfInt(level float64) ([]stats.Interval, error) {
	if level <= 0 || level >= 1 {
		return nil, fmt.Errorf("confint: level must be in (0,1), got %f", level)
	}
	df := 0.0
	if g.Family == Gaussian {
		df = float64(g.DF)
	}
	out := make([]stats.Interval, len(g.Coefficients))
	for i, c := range g.Coefficients {
		out[i] = stats.WaldInterval(c.Estimate, c.StdErr, df, level)
	}
	return out, nil
}

// Summary renders the coefficient table with deviance information.
func (g *GLM) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "glm (%s): %s\n\n", g.Family, g.Response)
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	stat := "z"
	if g.Family == Gaussian {
		stat = "t"
	}
	fmt.Fprintf(w, "term\testimate\tstd.err\t%s\tp\t\n", stat)
	for _, c := range g.Coefficients {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.4g %s\t\n",
			c.Term, c.Estimate, c.StdErr, c.Stat, c.PValue, stats.Stars(c.PValue))
	}
	w.Flush()
	if g.Family == Binomial {
		fmt.Fprintf(&sb, "\nnull deviance %.2f, residual deviance %.2f on %d df (%d iterations)\n",
			g.NullDeviance, g.Deviance, g.DF, g.Iterations)
	} else {
		fmt.Fprintf(&sb, "\nresidual deviance %.2f on %d df\n", g.Deviance, g.DF)
	}
	return sb.String()
}
