// Package seasonal implements an additive seasonal trend model.
//
// Many monthly series mix a repeating pattern with steady growth, for
// example higher sales every winter on top of a rising baseline. The
// model captures this as
//
//	y = a + b*sin(w*t + phi) + c*t
//
// where a is the baseline level, b the seasonal amplitude, w the angular
// frequency of the cycle, phi the phase shift, and c the linear drift.
//
// # Fitting
//
// Fitting is nonlinear least squares by Levenberg-Marquardt, started from
// a data-derived guess (mean baseline, half-range amplitude, one cycle
// over the series, zero phase and drift):
//
//	model, err := seasonal.Fit(series)
//	if err != nil {
//	    return err
//	}
//	next := model.Forecast(series.LastMonth() + 1)
//
// FitFrom accepts an explicit starting point, which matters when refitting
// an extended series under the original guess. Convergence depends on the
// starting point; a guess far from the true parameters can make the
// optimizer exhaust its iteration budget, which surfaces as an error and
// is never retried.
//
// # Parameter form
//
// A sine term has several equivalent (amplitude, phase) representations.
// Fitted parameters are normalized to amplitude >= 0, frequency >= 0 and
// phase in (-pi, pi], so recovered parameters can be compared directly.
package seasonal
