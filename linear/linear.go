// Package linear implements a least-squares linear trend model.
package linear

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/trendfit/timeseries"
)

// Model represents a fitted linear trend y = Slope*t + Intercept.
type Model struct {
	Slope     float64
	Intercept float64
}

// Fit estimates the trend coefficients by ordinary least squares over the
// series months and values.
func Fit(series *timeseries.Series) (*Model, error) {
	if series.Len() != len(series.Months) {
		return nil, errors.New("months and values must have the same length")
	}
	if series.Len() < 2 {
		return nil, errors.New("insufficient data points for a linear fit")
	}
	if stat.Variance(series.Months, nil) == 0 {
		return nil, errors.New("degenerate fit: months have zero variance")
	}

	intercept, slope := stat.LinearRegression(series.Months, series.Values, nil, false)
	return &Model{
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

// Eval evaluates the fitted trend at month t.
func (m *Model) Eval(t float64) float64 {
	return m.Slope*t + m.Intercept
}

// FittedValues evaluates the trend at every month of the series.
func (m *Model) FittedValues(series *timeseries.Series) []float64 {
	fitted := make([]float64, len(series.Months))
	for i, t := range series.Months {
		fitted[i] = m.Eval(t)
	}
	return fitted
}

// Forecast predicts the value at a future month.
func (m *Model) Forecast(t float64) float64 {
	return m.Eval(t)
}

// RSquared returns the coefficient of determination of the fit against the
// given series.
func (m *Model) RSquared(series *timeseries.Series) float64 {
	return stat.RSquaredFrom(m.FittedValues(series), series.Values, nil)
}
