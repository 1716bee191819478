// Package gallery holds the visualization-pitfall demonstrations: datasets
// engineered so that summary statistics agree while the pictures disagree,
// and a grouped dataset whose trend reverses under pooling.
package gallery

import (
	"gonum.org/v1/gonum/stat"

	"github.com/clobos/statlab/internal/stats"
)

// Member is one dataset in a same-stats family.
type Member struct {
	Name string
	X    []float64
	Y    []float64
}

// MemberSummary are the statistics the family members share.
type MemberSummary struct {
	MeanX     float64
	MeanY     float64
	VarX      float64
	VarY      float64
	Corr      float64
	Slope     float64
	Intercept float64
}

// Summarize computes the shared summary for one member.
func (m Member) Summarize() MemberSummary {
	alpha, beta := stat.LinearRegression(m.X, m.Y, nil, false)
	return MemberSummary{
		MeanX:     stats.Mean(m.X),
		MeanY:     stats.Mean(m.Y),
		VarX:      stats.Variance(m.X),
		VarY:      stats.Variance(m.Y),
		Corr:      stats.Correlation(m.X, m.Y),
		Slope:     beta,
		Intercept: alpha,
	}
}

// Anscombe returns the classic quartet: four scatters with near-identical
// means, variances, correlation and fitted line, and thoroughly different
// shapes. The moral is the same one the Datasaurus Dozen makes at scale:
// always plot the data.
func Anscombe() []Member {
	x123 := []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5}
	return []Member{
		{
			Name: "I",
			X:    x123,
			Y:    []float64{8.04, 6.95, 7.58, 8.81, 8.33, 9.96, 7.24, 4.26, 10.84, 4.82, 5.68},
		},
		{
			Name: "II",
			X:    x123,
			Y:    []float64{9.14, 8.14, 8.74, 8.77, 9.26, 8.10, 6.13, 3.10, 9.13, 7.26, 4.74},
		},
		{
			Name: "III",
			X:    x123,
			Y:    []float64{7.46, 6.77, 12.74, 7.11, 7.81, 8.84, 6.08, 5.39, 8.15, 6.42, 5.73},
		},
		{
			Name: "IV",
			X:    []float64{8, 8, 8, 8, 8, 8, 8, 19, 8, 8, 8},
			Y:    []float64{6.58, 5.76, 7.71, 8.84, 8.47, 7.04, 5.25, 12.50, 5.56, 7.91, 6.89},
		},
	}
}
