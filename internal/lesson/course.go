package lesson

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/clobos/statlab/internal/analysis"
	"github.com/clobos/statlab/internal/dataset"
	"github.com/clobos/statlab/internal/dynamics"
	"github.com/clobos/statlab/internal/gallery"
	"github.com/clobos/statlab/internal/integrators"
	"github.com/clobos/statlab/internal/regress"
	"github.com/clobos/statlab/internal/stats"
	"github.com/clobos/statlab/internal/viz"
)

func courseLessons() []Lesson {
	return []Lesson{
		{
			Name:    "regression",
			Title:   "Linear models and the GLM",
			Summary: "fit weight ~ species + sex on the trapping records",
			Run:     runRegression,
		},
		{
			Name:    "confidence-intervals",
			Title:   "Confidence intervals and p-values",
			Summary: "what a 95% interval does and does not say",
			Run:     runIntervals,
		},
		{
			Name:    "anscombe",
			Title:   "Same statistics, different pictures",
			Summary: "Anscombe's quartet, the Datasaurus's ancestor",
			Run:     runAnscombe,
		},
		{
			Name:    "simpsons-paradox",
			Title:   "Simpson's Paradox",
			Summary: "a trend that reverses when groups are pooled",
			Run:     runSimpson,
		},
		{
			Name:    "logistic-growth",
			Title:   "Fixed points of 1-D systems",
			Summary: "stability of dN/dt = rN(1-N/K) from the derivative sign",
			Run:     runLogisticGrowth,
		},
		{
			Name:    "predator-prey",
			Title:   "Nullclines, Jacobians and eigenvalues",
			Summary: "classifying the equilibria of a predator-prey system",
			Run:     runPredatorPrey,
		},
	}
}

func runRegression(w io.Writer) error {
	fmt.Fprintln(w, "A linear model relates a response to a linear combination of")
	fmt.Fprintln(w, "predictors. Categorical predictors enter as treatment-coded")
	fmt.Fprintln(w, "dummies: the first level is the baseline, and each coefficient")
	fmt.Fprintln(w, "is a shift relative to it.")
	fmt.Fprintln(w)

	tbl, err := dataset.Open("surveys")
	if err != nil {
		return err
	}
	m, err := regress.FitLinear(tbl, "weight", []string{"species", "sex"})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, m.Summary())

	fmt.Fprintln(w, "The same machinery generalizes: a GLM with the logit link")
	fmt.Fprintln(w, "models a 0/1 response. Here, whether an animal is heavier than")
	fmt.Fprintln(w, "the median, from its hindfoot length:")
	fmt.Fprintln(w)

	med, err := medianWeight(tbl)
	if err != nil {
		return err
	}
	heavy := deriveHeavy(tbl, med)
	g, err := regress.FitGLM(heavy, "heavy", []string{"hindfoot_length"}, regress.Binomial)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, g.Summary())
	return nil
}

func medianWeight(tbl *dataset.Table) (float64, error) {
	ws, err := tbl.NumericComplete("weight")
	if err != nil {
		return 0, err
	}
	return stats.Median(ws), nil
}

// deriveHeavy adds a 0/1 column marking rows above the median weight.
func deriveHeavy(tbl *dataset.Table, median float64) *dataset.Table {
	wc, _ := tbl.Column("weight")
	heavy := &dataset.Column{Name: "heavy", Kind: dataset.Numeric}
	for i := range wc.Values {
		if wc.Missing[i] {
			heavy.Values = append(heavy.Values, "NA")
			heavy.Floats = append(heavy.Floats, 0)
			heavy.Missing = append(heavy.Missing, true)
			continue
		}
		v := 0.0
		if wc.Floats[i] > median {
			v = 1.0
		}
		heavy.Values = append(heavy.Values, fmt.Sprintf("%.0f", v))
		heavy.Floats = append(heavy.Floats, v)
		heavy.Missing = append(heavy.Missing, false)
	}
	out := &dataset.Table{Name: tbl.Name, Columns: append(append([]*dataset.Column{}, tbl.Columns...), heavy)}
	return out
}

func runIntervals(w io.Writer) error {
	fmt.Fprintln(w, "A 95% confidence interval is a procedure: across repeated")
	fmt.Fprintln(w, "samples, 95% of the intervals it produces cover the true value.")
	fmt.Fprintln(w, "Demanding 99% coverage costs width. The two intervals below are")
	fmt.Fprintln(w, "for the same fit; the 99% one is always wider.")
	fmt.Fprintln(w)

	tbl, err := dataset.Open("surveys")
	if err != nil {
		return err
	}
	m, err := regress.FitLinear(tbl, "hindfoot_length", []string{"sex"})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, m.Summary())

	ci95, err := m.ConfInt(0.95)
	if err != nil {
		return err
	}
	ci99, err := m.ConfInt(0.99)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "term\t95%\t99%\t")
	for i, c := range m.Coefficients {
		fmt.Fprintf(tw, "%s\t[%.3f, %.3f]\t[%.3f, %.3f]\t\n",
			c.Term, ci95[i].Lower, ci95[i].Upper, ci99[i].Lower, ci99[i].Upper)
	}
	tw.Flush()

	fmt.Fprintln(w)
	for _, c := range m.Coefficients {
		if c.Term == "(Intercept)" {
			continue
		}
		fmt.Fprintf(w, "p-value for %s is %.4g: %s at the 5%% level\n",
			c.Term, c.PValue, stats.Judge(c.PValue))
	}
	return nil
}

func runAnscombe(w io.Writer) error {
	fmt.Fprintln(w, "Four datasets, one summary. Means, variances, correlation and")
	fmt.Fprintln(w, "the fitted line all agree to two decimals; the scatters do not.")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "set\tmean x\tmean y\tvar x\tvar y\tr\tslope\tintercept\t")
	for _, m := range gallery.Anscombe() {
		s := m.Summarize()
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\t\n",
			m.Name, s.MeanX, s.MeanY, s.VarX, s.VarY, s.Corr, s.Slope, s.Intercept)
	}
	tw.Flush()

	for _, m := range gallery.Anscombe() {
		fmt.Fprintf(w, "\nset %s\n%s", m.Name, viz.Scatter(m.X, m.Y, 50, 12))
	}
	return nil
}

func runSimpson(w io.Writer) error {
	fmt.Fprintln(w, "Within every group, y falls as x rises. Pool the groups and the")
	fmt.Fprintln(w, "fitted slope turns positive: the grouping variable is a")
	fmt.Fprintln(w, "confounder, and aggregation hides it.")
	fmt.Fprintln(w)

	tbl := gallery.SimpsonData()
	report, err := gallery.AnalyzeSimpson(tbl)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "fit\tslope\tintercept\tn\t")
	for _, g := range report.Groups {
		fmt.Fprintf(tw, "group %s\t%.3f\t%.3f\t%d\t\n", g.Level, g.Slope, g.Intercept, g.N)
	}
	fmt.Fprintf(tw, "pooled\t%.3f\t%.3f\t%d\t\n", report.Pooled.Slope, report.Pooled.Intercept, report.Pooled.N)
	tw.Flush()

	xs, _ := tbl.Numeric("x")
	ys, _ := tbl.Numeric("y")
	fmt.Fprintf(w, "\n%s", viz.Scatter(xs, ys, 56, 14))
	if report.Reversed() {
		fmt.Fprintln(w, "\nevery group slope has the opposite sign of the pooled slope")
	}
	return nil
}

func runLogisticGrowth(w io.Writer) error {
	fmt.Fprintln(w, "dN/dt = rN(1 - N/K) has fixed points where the rate is zero:")
	fmt.Fprintln(w, "N = 0 and N = K. The derivative of the rate decides stability:")
	fmt.Fprintln(w, "f'(0) = r > 0 (perturbations grow), f'(K) = -r (they decay).")
	fmt.Fprintln(w)

	sys := dynamics.NewLogistic()
	fps, err := dynamics.Analyze(sys)
	if err != nil {
		return err
	}
	for _, fp := range fps {
		fmt.Fprintf(w, "N* = %-6.3g  f'(N*) = %-8.3g  %s\n",
			fp.State[0], real(fp.Eigenvalues[0]), fp.Class)
	}

	fmt.Fprintln(w, "\nA trajectory from N(0)=0.5 approaches the carrying capacity:")
	res, err := analysis.Simulate(context.Background(), sys, integrators.NewRK4(),
		dynamics.State{0.5}, analysis.Config{Dt: 0.05, Duration: 12})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, viz.LinePlot([][]float64{res.Series(0)}, []string{"N"}, 10))
	return nil
}

func runPredatorPrey(w io.Writer) error {
	fmt.Fprintln(w, "For a planar system the recipe is: find where both rates vanish")
	fmt.Fprintln(w, "(the nullclines cross), linearize there with the Jacobian, and")
	fmt.Fprintln(w, "read the character off the eigenvalues. Opposite-sign real")
	fmt.Fprintln(w, "eigenvalues make a saddle; a complex pair with negative real")
	fmt.Fprintln(w, "part makes a stable, oscillatory approach.")
	fmt.Fprintln(w)

	sys := dynamics.NewPredatorPrey()
	fps, err := dynamics.Analyze(sys)
	if err != nil {
		return err
	}
	for _, fp := range fps {
		fmt.Fprintf(w, "(%.3g, %.3g): eigenvalues %v -> %s",
			fp.State[0], fp.State[1], fp.Eigenvalues, fp.Class)
		if dynamics.Oscillatory(fp.Eigenvalues) {
			fmt.Fprint(w, " (oscillatory)")
		}
		fmt.Fprintln(w)
	}

	win := dynamics.Window{XMin: -0.2, XMax: 3, YMin: -0.5, YMax: 8}
	p, err := analysis.GeneratePortrait(context.Background(), sys, integrators.NewRK4(),
		[]dynamics.State{{2, 2}, {0.5, 6}},
		win, analysis.Config{Dt: 0.005, Duration: 20})
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, p.ASCII(64, 20))
	return nil
}
