package regress

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/clobos/statlab/internal/dataset"
)

// term is one column of the design matrix. A numeric predictor contributes
// itself; a categorical predictor contributes one treatment-coded dummy per
// non-reference level, named like "sexM".
type term struct {
	name   string
	column string
	level  string // empty for numeric terms
}

// Design is a model matrix with intercept, plus the response, built from a
// table with rows containing missing cells dropped.
type Design struct {
	Response string
	Terms    []string
	X        *mat.Dense
	Y        []float64

	terms []term
}

// NewDesign assembles the design matrix for response ~ predictors.
func NewDesign(tbl *dataset.Table, response string, predictors []string) (*Design, error) {
	if len(predictors) == 0 {
		return nil, fmt.Errorf("design: no predictors")
	}
	yc, err := tbl.Column(response)
	if err != nil {
		return nil, err
	}
	if yc.Kind != dataset.Numeric {
		return nil, fmt.Errorf("design: response %q is not numeric", response)
	}

	terms := []term{{name: "(Intercept)"}}
	cols := make([]*dataset.Column, 0, len(predictors))
	for _, p := range predictors {
		c, err := tbl.Column(p)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
		if c.Kind == dataset.Numeric {
			terms = append(terms, term{name: p, column: p})
			continue
		}
		levels := c.Levels()
		if len(levels) < 2 {
			return nil, fmt.Errorf("design: factor %q has fewer than 2 levels", p)
		}
		for _, lv := range levels[1:] { // first sorted level is the reference
			terms = append(terms, term{name: p + lv, column: p, level: lv})
		}
	}

	keep := make([]int, 0, tbl.NRows())
	for r := 0; r < tbl.NRows(); r++ {
		if yc.Missing[r] {
			continue
		}
		ok := true
		for _, c := range cols {
			if c.Missing[r] || (c.Kind == dataset.Numeric && math.IsNaN(c.Floats[r])) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, r)
		}
	}
	n, p := len(keep), len(terms)
	if n <= p {
		return nil, fmt.Errorf("design: %d complete rows for %d coefficients", n, p)
	}

	x := mat.NewDense(n, p, nil)
	y := make([]float64, n)
	for i, r := range keep {
		y[i] = yc.Floats[r]
		for j, tm := range terms {
			x.Set(i, j, termValue(tbl, tm, r))
		}
	}

	names := make([]string, p)
	for i, tm := range terms {
		names[i] = tm.name
	}
	return &Design{Response: response, Terms: names, X: x, Y: y, terms: terms}, nil
}

func termValue(tbl *dataset.Table, tm term, row int) float64 {
	if tm.column == "" {
		return 1 // intercept
	}
	c, _ := tbl.Column(tm.column)
	if tm.level == "" {
		return c.Floats[row]
	}
	if c.Values[row] == tm.level {
		return 1
	}
	return 0
}

func (d *Design) NRows() int { return len(d.Y) }
func (d *Design) NTerms() int {
	return len(d.terms)
}
