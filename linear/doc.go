// Package linear implements a first-degree least-squares trend model.
//
// The model captures steady growth or decline as y = a*t + b, where a is
// the monthly slope and b the intercept. Fitting is ordinary least squares
// (a degree-1 polynomial fit).
//
// Fit a trend and forecast the next month:
//
//	model, err := linear.Fit(series)
//	if err != nil {
//	    return err
//	}
//	next := model.Forecast(series.LastMonth() + 1)
//
// The fitted line over the observed months is available as
// model.FittedValues(series), and model.RSquared(series) reports the share
// of variance the trend explains.
package linear
