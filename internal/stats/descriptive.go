package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

func Mean(xs []float64) float64     { return stat.Mean(xs, nil) }
func Variance(xs []float64) float64 { return stat.Variance(xs, nil) }
func StdDev(xs []float64) float64   { return stat.StdDev(xs, nil) }

func Correlation(xs, ys []float64) float64 { return stat.Correlation(xs, ys, nil) }

// Quantile returns the empirical p-quantile of xs.
func Quantile(p float64, xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

func Median(xs []float64) float64 { return Quantile(0.5, xs) }

// Summary is a five-number summary plus mean, sd and count.
type Summary struct {
	N      int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	StdDev float64
}

func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("describe: no observations")
	}
	s := Summary{
		N:      len(xs),
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
		Q1:     Quantile(0.25, xs),
		Median: Quantile(0.5, xs),
		Q3:     Quantile(0.75, xs),
		Mean:   Mean(xs),
	}
	if len(xs) > 1 {
		s.StdDev = StdDev(xs)
	}
	for _, v := range xs {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s, nil
}
