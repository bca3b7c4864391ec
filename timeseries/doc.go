// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing a monthly time
// series, along with summary statistics used by the fitting packages.
//
// # Creating a Series
//
// Create a time series from a slice, with months numbered 1..n:
//
//	values := []float64{40.2, 42.1, 45.3, 44.8, 48.0}
//	series := timeseries.New(values)
//
// Or with explicit month indices:
//
//	series, err := timeseries.NewWithMonths(months, values)
//
// NewWithMonths returns an error when the two slices differ in length.
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Extending
//
// Append returns an extended copy, leaving the receiver untouched:
//
//	extended := series.Append(11, forecast)
package timeseries
