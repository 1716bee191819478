package stats

// Verdict is a conventional reading of a two-sided p-value.
type Verdict string

const (
	Significant    Verdict = "significant"
	Marginal       Verdict = "marginal"
	NotSignificant Verdict = "not significant"
)

const (
	SignificanceLevel = 0.05
	MarginalLevel     = 0.10
)

// Judge classifies a p-value against the usual 0.05 / 0.10 thresholds.
func Judge(p float64) Verdict {
	switch {
	case p < SignificanceLevel:
		return Significant
	case p < MarginalLevel:
		return Marginal
	default:
		return NotSignificant
	}
}

// Stars renders the familiar significance codes.
func Stars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	case p < 0.1:
		return "."
	default:
		return ""
	}
}
