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

// Coefficient is one fitted model term.
type Coefficient struct {
	Term     string
	Estimate float64
	StdErr   float64
	Stat     float64 // t for linear models, z for binomial GLMs
	PValue   float64
}

// LinearModel is an ordinary-least-squares fit.
type LinearModel struct {
	Response     string
	Coefficients []Coefficient
	DF           int // residual degrees of freedom
	RSquared     float64
	ResidualSE   float64

	design *Design
}

// FitLinear fits response ~ predictors on a table by least squares.
func FitLinear(tbl *dataset.Table, response string, predictors []string) (*LinearModel, error) {
	d, err := NewDesign(tbl, response, predictors)
	if err != nil {
		return nil, err
	}
	return fitDesign(d)
}

func fitDesign(d *Design) (*LinearModel, error) {
	n, p := d.NRows(), d.NTerms()
	yv := mat.NewDense(n, 1, append([]float64(nil), d.Y...))

	var beta mat.Dense
	if err := beta.Solve(d.X, yv); err != nil {
		return nil, fmt.Errorf("fit %s: design matrix is rank deficient: %w", d.Response, err)
	}

	var xtx, xtxInv mat.Dense
	xtx.Mul(d.X.T(), d.X)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("fit %s: design matrix is rank deficient: %w", d.Response, err)
	}

	// Residual sum of squares and total sum of squares about the mean.
	rss, tss := 0.0, 0.0
	ybar := stats.Mean(d.Y)
	for i := 0; i < n; i++ {
		fit := 0.0
		for j := 0; j < p; j++ {
			fit += d.X.At(i, j) * beta.At(j, 0)
		}
		r := d.Y[i] - fit
		rss += r * r
		t := d.Y[i] - ybar
		tss += t * t
	}

	df := n - p
	sigma2 := rss / float64(df)

	m := &LinearModel{
		Response:   d.Response,
		DF:         df,
		ResidualSE: math.Sqrt(sigma2),
		design:     d,
	}
	if tss > 0 {
		m.RSquared = 1 - rss/tss
	}
	for j := 0; j < p; j++ {
		est := beta.At(j, 0)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		t := est / se
		m.Coefficients = append(m.Coefficients, Coefficient{
			Term:     d.Terms[j],
			Estimate: est,
			StdErr:   se,
			Stat:     t,
			PValue:   stats.TPValue(t, float64(df)),
		})
	}
	return m, nil
}

// Coef returns the estimate of a named term.
func (m *LinearModel) Coef(term string) (float64, error) {
	for _, c := range m.Coefficients {
		if c.Term == term {
			return c.Estimate, nil
		}
	}
	return 0, fmt.Errorf("model has no term %q", term)
}

// Predict evaluates the fitted line for the given term values. Terms not
// present in vals are taken as zero; the intercept is always included.
func (m *LinearModel) Predict(vals map[string]float64) float64 {
	out := 0.0
	for _, c := range m.Coefficients {
		if c.Term == "(Intercept)" {
			out += c.Estimate
			continue
		}
		out += c.Estimate * vals[c.Term]
	}
	return out
}

// ConfInt computes per-coefficient t intervals at the given level.
func (m *LinearModel) ConfInt(level float64) ([]stats.Interval, error) {
	if level <= 0 || level >= 1 {
		return nil, fmt.Errorf("confint: level must be in (0,1), got %f", level)
	}
	out := make([]stats.Interval, len(m.Coefficients))
	for i, c := range m.Coefficients {
		out[i] = stats.WaldInterval(c.Estimate, c.StdErr, float64(m.DF), level)
	}
	return out, nil
}

// Summary renders an R-flavoured coefficient table.
func (m *LinearModel) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "linear model: %s\n\n", m.Response)
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "term\testimate\tstd.err\tt\tp\t")
	for _, c := range m.Coefficients {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.4g %s\t\n",
			c.Term, c.Estimate, c.StdErr, c.Stat, c.PValue, stats.Stars(c.PValue))
	}
	w.Flush()
	fmt.Fprintf(&sb, "\nresidual SE %.3f on %d df, R-squared %.4f\n", m.ResidualSE, m.DF, m.RSquared)
	return sb.String()
}
