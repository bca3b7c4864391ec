// Package analysis runs the trend-fitting and forecasting pipeline.
package analysis

import (
	"fmt"
	"io"

	"github.com/sartorproj/trendfit/linear"
	"github.com/sartorproj/trendfit/seasonal"
	"github.com/sartorproj/trendfit/stats"
	"github.com/sartorproj/trendfit/timeseries"
)

// Result holds the fitted models, curves and forecasts of one run.
type Result struct {
	Series *timeseries.Series

	Linear   *linear.Model
	Seasonal *seasonal.Model // fit on the observed series; source of the reported forecast
	Refit    *seasonal.Model // fit on the extended series; shapes the plotted curve only

	Trend         []float64          // linear fitted values over the observed months
	SeasonalTrend []float64          // refit curve over the extended months
	Extended      *timeseries.Series // observed series plus the forecast pseudo-observation

	ForecastMonth    float64
	LinearForecast   float64
	SeasonalForecast float64
}

// Run fits both trend models to the given months and values, forecasts
// one month past the end of the series, and refits the seasonal model on
// the series extended by its own forecast. The refit feeds only the
// plotted seasonal curve; the reported forecasts come from the
// pre-extension fits.
//
// Errors from the series constructor or either fit abort the run and
// propagate unchanged; nothing is rendered or reported on failure.
func Run(months, values []float64) (*Result, error) {
	series, err := timeseries.NewWithMonths(months, values)
	if err != nil {
		return nil, err
	}
	return RunSeries(series)
}

// RunSeries is Run for an already-constructed series.
func RunSeries(series *timeseries.Series) (*Result, error) {
	lin, err := linear.Fit(series)
	if err != nil {
		return nil, err
	}

	guess := seasonal.InitialGuess(series)
	sea, err := seasonal.FitFrom(series, guess)
	if err != nil {
		return nil, err
	}

	horizon := series.LastMonth() + 1
	linForecast := lin.Forecast(horizon)
	seaForecast := sea.Forecast(horizon)

	// The extended refit reuses the guess derived from the observed
	// series, not one recomputed over the extended series.
	extended := series.Append(horizon, seaForecast)
	refit, err := seasonal.FitFrom(extended, guess)
	if err != nil {
		return nil, err
	}

	return &Result{
		Series:           series,
		Linear:           lin,
		Seasonal:         sea,
		Refit:            refit,
		Trend:            lin.FittedValues(series),
		SeasonalTrend:    refit.FittedValues(extended),
		Extended:         extended,
		ForecastMonth:    horizon,
		LinearForecast:   linForecast,
		SeasonalForecast: seaForecast,
	}, nil
}

// Report writes the two forecast lines, values formatted to two decimals.
func (r *Result) Report(w io.Writer) {
	fmt.Fprintf(w, "Revenue forecast for month %g (linear trend): %.2f mln\n", r.ForecastMonth, r.LinearForecast)
	fmt.Fprintf(w, "Revenue forecast for month %g (seasonal trend): %.2f mln\n", r.ForecastMonth, r.SeasonalForecast)
}

// Diagnostics summarizes how well each model tracks the observed series.
type Diagnostics struct {
	LinearRMSE   float64
	LinearMAE    float64
	LinearR2     float64
	SeasonalRMSE float64
	SeasonalMAE  float64
	SeasonalR2   float64
}

// Diagnostics computes residual metrics for both pre-extension fits.
func (r *Result) Diagnostics() Diagnostics {
	seasonalFitted := r.Seasonal.FittedValues(r.Series)
	return Diagnostics{
		LinearRMSE:   stats.RMSE(r.Series.Values, r.Trend),
		LinearMAE:    stats.MAE(r.Series.Values, r.Trend),
		LinearR2:     stats.RSquared(r.Series.Values, r.Trend),
		SeasonalRMSE: stats.RMSE(r.Series.Values, seasonalFitted),
		SeasonalMAE:  stats.MAE(r.Series.Values, seasonalFitted),
		SeasonalR2:   stats.RSquared(r.Series.Values, seasonalFitted),
	}
}
