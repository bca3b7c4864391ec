// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"sort"
)

// Series represents a time series with month indices and observed values.
type Series struct {
	Months []float64
	Values []float64
}

// New creates a new time series from values, with months numbered 1..n.
func New(values []float64) *Series {
	months := make([]float64, len(values))
	for i := range months {
		months[i] = float64(i + 1)
	}
	return &Series{
		Months: months,
		Values: values,
	}
}

// NewWithMonths creates a time series with explicit month indices.
func NewWithMonths(months, values []float64) (*Series, error) {
	if len(months) != len(values) {
		return nil, errors.New("months and values must have the same length")
	}
	return &Series{
		Months: months,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series values.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series values.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series values.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	months := make([]float64, len(s.Months))
	copy(months, s.Months)

	return &Series{
		Months: months,
		Values: values,
	}
}

// Append returns a copy of the series extended by one observation.
// The original series is not modified.
func (s *Series) Append(month, value float64) *Series {
	out := s.Copy()
	out.Months = append(out.Months, month)
	out.Values = append(out.Values, value)
	return out
}

// LastMonth returns the month index of the final observation.
func (s *Series) LastMonth() float64 {
	if len(s.Months) == 0 {
		return math.NaN()
	}
	return s.Months[len(s.Months)-1]
}
