package gallery

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/clobos/statlab/internal/dataset"
)

// SimpsonData builds the grouped dataset for the Simpson's Paradox lesson:
// within every group y falls by one unit per unit of x, but the groups are
// offset so the pooled fit slopes upward.
func SimpsonData() *dataset.Table {
	group := &dataset.Column{Name: "group", Kind: dataset.Categorical}
	xs := &dataset.Column{Name: "x", Kind: dataset.Numeric}
	ys := &dataset.Column{Name: "y", Kind: dataset.Numeric}

	for g := 0; g < 3; g++ {
		label := string(rune('A' + g))
		for j := 0; j <= 5; j++ {
			x := float64(5*g + j)
			y := float64(20+15*g) - x
			group.Values = append(group.Values, label)
			group.Missing = append(group.Missing, false)
			xs.Values = append(xs.Values, strconv.FormatFloat(x, 'f', -1, 64))
			xs.Floats = append(xs.Floats, x)
			xs.Missing = append(xs.Missing, false)
			ys.Values = append(ys.Values, strconv.FormatFloat(y, 'f', -1, 64))
			ys.Floats = append(ys.Floats, y)
			ys.Missing = append(ys.Missing, false)
		}
	}

	return &dataset.Table{Name: "simpson", Columns: []*dataset.Column{group, xs, ys}}
}

// GroupFit is the fitted line for one group, or for the pooled data.
type GroupFit struct {
	Level     string
	Slope     float64
	Intercept float64
	N         int
}

// SimpsonReport holds the per-group fits against the pooled fit.
type SimpsonReport struct {
	Groups []GroupFit
	Pooled GroupFit
}

// Reversed reports whether every group slope disagrees in sign with the
// pooled slope, which is the paradox.
func (r SimpsonReport) Reversed() bool {
	for _, g := range r.Groups {
		if g.Slope*r.Pooled.Slope >= 0 {
			return false
		}
	}
	return true
}

// AnalyzeSimpson fits y ~ x per group and pooled.
func AnalyzeSimpson(tbl *dataset.Table) (SimpsonReport, error) {
	groups, err := tbl.GroupBy("group")
	if err != nil {
		return SimpsonReport{}, err
	}
	var report SimpsonReport
	for _, g := range groups {
		fit, err := fitXY(g.Table)
		if err != nil {
			return SimpsonReport{}, fmt.Errorf("group %s: %w", g.Level, err)
		}
		fit.Level = g.Level
		report.Groups = append(report.Groups, fit)
	}
	pooled, err := fitXY(tbl)
	if err != nil {
		return SimpsonReport{}, err
	}
	pooled.Level = "pooled"
	report.Pooled = pooled
	return report, nil
}

func fitXY(tbl *dataset.Table) (GroupFit, error) {
	rows, err := tbl.CompleteRows("x", "y")
	if err != nil {
		return GroupFit{}, err
	}
	if len(rows) < 3 {
		return GroupFit{}, fmt.Errorf("need at least 3 rows, got %d", len(rows))
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i], ys[i] = r[0], r[1]
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return GroupFit{Slope: beta, Intercept: alpha, N: len(rows)}, nil
}
