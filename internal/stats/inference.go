package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TQuantile returns the p-quantile of Student's t with df degrees of freedom.
func TQuantile(p, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// ZQuantile returns the p-quantile of the standard normal.
func ZQuantile(p float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Quantile(p)
}

// TPValue returns the two-sided p-value of a t statistic with df degrees of
// freedom.
func TPValue(t, df float64) float64 {
	d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * d.CDF(-math.Abs(t))
}

// ZPValue returns the two-sided p-value of a z statistic.
func ZPValue(z float64) float64 {
	d := distuv.Normal{Mu: 0, Sigma: 1}
	return 2 * d.CDF(-math.Abs(z))
}

// Interval is a two-sided confidence interval.
type Interval struct {
	Level float64
	Lower float64
	Upper float64
}

func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

func (iv Interval) String() string {
	return fmt.Sprintf("%.0f%% CI [%.3f, %.3f]", iv.Level*100, iv.Lower, iv.Upper)
}

// WaldInterval builds a confidence interval around an estimate from its
// standard error. With df > 0 the t distribution supplies the critical
// value; otherwise the standard normal does.
func WaldInterval(estimate, se, df, level float64) Interval {
	p := 1 - (1-level)/2
	var crit float64
	if df > 0 {
		crit = TQuantile(p, df)
	} else {
		crit = ZQuantile(p)
	}
	return Interval{Level: level, Lower: estimate - crit*se, Upper: estimate + crit*se}
}

// MeanInterval is the t interval for the mean of a sample.
func MeanInterval(xs []float64, level float64) (Interval, error) {
	if len(xs) < 2 {
		return Interval{}, fmt.Errorf("mean interval: need at least 2 observations, got %d", len(xs))
	}
	if level <= 0 || level >= 1 {
		return Interval{}, fmt.Errorf("mean interval: level must be in (0,1), got %f", level)
	}
	se := StdDev(xs) / math.Sqrt(float64(len(xs)))
	return WaldInterval(Mean(xs), se, float64(len(xs)-1), level), nil
}
