// Package stats provides residual diagnostics for fitted trend models.
//
// The metrics compare observed values against model fitted values:
//
//	rmse := stats.RMSE(series.Values, model.FittedValues(series))
//	mae := stats.MAE(series.Values, model.FittedValues(series))
//	r2 := stats.RSquared(series.Values, model.FittedValues(series))
//
// All three return NaN when the inputs are empty or differ in length.
package stats
