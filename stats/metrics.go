package stats

import (
	"math"
)

// RMSE returns the root mean squared error between observed and fitted
// values. Returns NaN for empty or mismatched inputs.
func RMSE(observed, fitted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(fitted) {
		return math.NaN()
	}
	sse := 0.0
	for i := range observed {
		diff := observed[i] - fitted[i]
		sse += diff * diff
	}
	return math.Sqrt(sse / float64(len(observed)))
}

// MAE returns the mean absolute error between observed and fitted values.
// Returns NaN for empty or mismatched inputs.
func MAE(observed, fitted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(fitted) {
		return math.NaN()
	}
	sum := 0.0
	for i := range observed {
		sum += math.Abs(observed[i] - fitted[i])
	}
	return sum / float64(len(observed))
}

// RSquared returns the coefficient of determination of fitted against
// observed values: 1 - SSE/SST. A constant observed series has zero total
// variance; in that case 1 is returned for a perfect fit and NaN
// otherwise.
func RSquared(observed, fitted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(fitted) {
		return math.NaN()
	}

	mean := 0.0
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	sse, sst := 0.0, 0.0
	for i := range observed {
		r := observed[i] - fitted[i]
		d := observed[i] - mean
		sse += r * r
		sst += d * d
	}

	if sst == 0 {
		if sse == 0 {
			return 1
		}
		return math.NaN()
	}
	return 1 - sse/sst
}
