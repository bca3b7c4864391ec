// Package analysis ties the trend models into one forecasting pipeline.
//
// A run is a single linear pass: build the series, fit the linear trend,
// fit the seasonal model from its standard initial guess, evaluate both
// models one month past the end of the series, then refit the seasonal
// model on the series extended by its own forecast. The refit only
// shapes the plotted seasonal curve; the reported forecast is computed
// before the extension.
//
//	res, err := analysis.Run(months, revenue)
//	if err != nil {
//	    return err
//	}
//	res.Report(os.Stdout)
//
// There is no retry and no partial output: the first error aborts the
// run and propagates to the caller.
package analysis
