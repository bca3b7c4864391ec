// Package seasonal implements a sinusoidal-plus-drift seasonal trend model.
package seasonal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/trendfit/timeseries"
)

// numParams is the number of free parameters of the model.
const numParams = 5

// Optimizer settings for the Levenberg-Marquardt fit.
const (
	tolerance      = 1e-10
	initialDamping = 1e-3
	dampingUp      = 10.0
	dampingDown    = 0.1
	maxDamping     = 1e12
)

// maxIterations bounds the optimizer. A fit that exhausts it returns a
// non-convergence error. Variable so tests can tighten the budget.
var maxIterations = 200

// Params holds the coefficients of the seasonal model
//
//	y = Baseline + Amplitude*sin(Frequency*t + Phase) + Drift*t
//
// Baseline is the average level, Amplitude the strength of the seasonal
// swing, Frequency the angular frequency of the cycle, Phase the position
// of the peak, and Drift the linear growth per month.
type Params struct {
	Baseline  float64
	Amplitude float64
	Frequency float64
	Phase     float64
	Drift     float64
}

// Eval evaluates the model at month t.
func (p Params) Eval(t float64) float64 {
	return p.Baseline + p.Amplitude*math.Sin(p.Frequency*t+p.Phase) + p.Drift*t
}

func (p Params) vector() []float64 {
	return []float64{p.Baseline, p.Amplitude, p.Frequency, p.Phase, p.Drift}
}

func fromVector(v []float64) Params {
	return Params{
		Baseline:  v[0],
		Amplitude: v[1],
		Frequency: v[2],
		Phase:     v[3],
		Drift:     v[4],
	}
}

// canonical normalizes the sign/phase ambiguity of the sine term so that
// equivalent parameterizations compare equal: Amplitude >= 0,
// Frequency >= 0, Phase in (-pi, pi]. The fitted curve is unchanged.
func (p Params) canonical() Params {
	if p.Frequency < 0 {
		p.Frequency = -p.Frequency
		p.Phase = -p.Phase
		p.Amplitude = -p.Amplitude
	}
	if p.Amplitude < 0 {
		p.Amplitude = -p.Amplitude
		p.Phase += math.Pi
	}
	p.Phase = math.Mod(p.Phase, 2*math.Pi)
	if p.Phase > math.Pi {
		p.Phase -= 2 * math.Pi
	} else if p.Phase <= -math.Pi {
		p.Phase += 2 * math.Pi
	}
	return p
}

// Model represents a fitted seasonal model.
type Model struct {
	Params
	Iterations int     // optimizer iterations used
	SSE        float64 // residual sum of squares at convergence
}

// InitialGuess returns the standard starting point for the optimizer:
// baseline at the series mean, amplitude at half the observed range,
// frequency for one cycle over the series length, zero phase, zero drift.
func InitialGuess(series *timeseries.Series) Params {
	return Params{
		Baseline:  series.Mean(),
		Amplitude: (series.Max() - series.Min()) / 2,
		Frequency: 2 * math.Pi / float64(series.Len()),
		Phase:     0,
		Drift:     0,
	}
}

// Fit fits the seasonal model to the series starting from InitialGuess.
func Fit(series *timeseries.Series) (*Model, error) {
	return FitFrom(series, InitialGuess(series))
}

// FitFrom fits the seasonal model starting from an explicit parameter
// guess, using damped (Levenberg-Marquardt) nonlinear least squares with
// an analytic Jacobian. The fit is deterministic: the same series and
// guess always produce the same parameters.
//
// An error is returned when the series is malformed, has fewer points
// than the model has parameters, or the optimizer fails to converge
// within its iteration budget. Non-convergence is not retried.
func FitFrom(series *timeseries.Series, guess Params) (*Model, error) {
	if series.Len() != len(series.Months) {
		return nil, errors.New("months and values must have the same length")
	}
	if series.Len() < numParams {
		return nil, errors.New("insufficient data points for a 5-parameter seasonal fit")
	}

	params, iterations, sse, err := levenbergMarquardt(series.Months, series.Values, guess.vector())
	if err != nil {
		return nil, err
	}

	return &Model{
		Params:     fromVector(params).canonical(),
		Iterations: iterations,
		SSE:        sse,
	}, nil
}

// FittedValues evaluates the model at every month of the series.
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

// levenbergMarquardt minimizes the sum of squared residuals of the model
// against (t, y), starting from the given parameter vector. Each step
// solves the damped normal equations (J'J + lambda*I) delta = J'r; the
// damping factor shrinks after accepted steps and grows after rejected
// ones.
func levenbergMarquardt(t, y, start []float64) ([]float64, int, float64, error) {
	params := make([]float64, numParams)
	copy(params, start)

	lambda := initialDamping
	sse := sumSquaredResiduals(t, y, params)

	for iter := 1; iter <= maxIterations; iter++ {
		jac, resid := linearize(t, y, params)

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		var jtr mat.VecDense
		jtr.MulVec(jac.T(), resid)

		// Gradient vanished: the current parameters are a least-squares
		// stationary point.
		if mat.Norm(&jtr, 2) <= tolerance*(1+sse) {
			return params, iter, sse, nil
		}

		accepted := false
		for lambda <= maxDamping {
			damped := mat.DenseCopyOf(&jtj)
			for i := 0; i < numParams; i++ {
				damped.Set(i, i, damped.At(i, i)+lambda)
			}

			var delta mat.VecDense
			if err := delta.SolveVec(damped, &jtr); err != nil {
				lambda *= dampingUp
				continue
			}

			trial := make([]float64, numParams)
			floats.AddTo(trial, params, delta.RawVector().Data)

			trialSSE := sumSquaredResiduals(t, y, trial)
			if trialSSE <= sse {
				step := floats.Norm(delta.RawVector().Data, 2)
				improvement := sse - trialSSE

				params = trial
				sse = trialSSE
				lambda = math.Max(lambda*dampingDown, 1e-15)
				accepted = true

				if step <= tolerance*(1+floats.Norm(params, 2)) || improvement <= tolerance*(1+sse) {
					return params, iter, sse, nil
				}
				break
			}
			lambda *= dampingUp
		}

		if !accepted {
			return nil, iter, sse, errors.New("seasonal fit failed to converge: damping limit reached")
		}
	}

	return nil, maxIterations, sse, fmt.Errorf("seasonal fit failed to converge after %d iterations", maxIterations)
}

// linearize builds the Jacobian of the model and the residual vector
// y - f(t) at the current parameters.
func linearize(t, y, params []float64) (*mat.Dense, *mat.VecDense) {
	p := fromVector(params)
	n := len(t)

	jac := mat.NewDense(n, numParams, nil)
	resid := mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		angle := p.Frequency*t[i] + p.Phase
		sin, cos := math.Sincos(angle)

		jac.Set(i, 0, 1)
		jac.Set(i, 1, sin)
		jac.Set(i, 2, p.Amplitude*t[i]*cos)
		jac.Set(i, 3, p.Amplitude*cos)
		jac.Set(i, 4, t[i])

		resid.SetVec(i, y[i]-p.Eval(t[i]))
	}
	return jac, resid
}

func sumSquaredResiduals(t, y, params []float64) float64 {
	p := fromVector(params)
	sse := 0.0
	for i := range t {
		r := y[i] - p.Eval(t[i])
		sse += r * r
	}
	return sse
}
