package analyzer

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"PairLens/internal/model"
)

// Summarize computes the sample covariance and Pearson correlation over the
// aligned returns. Both use n-1 denominators. The correlation is clamped to
// [-1, 1] to absorb floating-point overshoot. Values are unrounded; rounding
// happens when the result record is assembled.
func Summarize(ar *model.AlignedReturnSeries) (correlation, covariance float64, err error) {
	v1 := stat.Variance(ar.Returns1, nil)
	v2 := stat.Variance(ar.Returns2, nil)
	if v1 == 0 {
		return 0, 0, newError(KindDegenerateSeries, ar.Symbol1,
			"returns have zero variance, correlation is undefined")
	}
	if v2 == 0 {
		return 0, 0, newError(KindDegenerateSeries, ar.Symbol2,
			"returns have zero variance, correlation is undefined")
	}

	covariance = stat.Covariance(ar.Returns1, ar.Returns2, nil)
	correlation = covariance / (math.Sqrt(v1) * math.Sqrt(v2))
	if correlation > 1 {
		correlation = 1
	}
	if correlation < -1 {
		correlation = -1
	}
	return correlation, covariance, nil
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
