// Package trendfit provides linear and seasonal trend fitting for small
// time series, with one-step-ahead forecasting and chart rendering.
//
// TrendFit fits two models to a monthly series: a least-squares linear
// trend y = a*t + b, and an additive seasonal model
// y = a + b*sin(w*t + phi) + c*t combining a sinusoidal component with a
// linear drift. Both models are evaluated one month past the end of the
// series to produce forecasts, and the fitted curves are rendered as a
// two-panel PNG figure.
//
// # Quick Start
//
// Run the full pipeline on a series:
//
//	res, err := analysis.Run(months, revenue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Report(os.Stdout)
//
//	fig, _ := chart.Render(res)
//	fig.Save("revenue_trends.png")
//
// Or fit the models directly:
//
//	series := timeseries.New(revenue)
//	lin, _ := linear.Fit(series)
//	sea, _ := seasonal.Fit(series)
//	fmt.Println(lin.Forecast(11), sea.Forecast(11))
//
// # Packages
//
// The library is organized into the following packages:
//
//   - linear: least-squares linear trend model
//   - seasonal: sinusoidal-plus-drift model fitted by Levenberg-Marquardt
//   - analysis: the fit/forecast/refit pipeline and text report
//   - chart: two-panel figure rendering
//   - stats: residual diagnostics (RMSE, MAE, R-squared)
//   - timeseries: time series data structure and summary statistics
package trendfit
