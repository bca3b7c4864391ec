package seasonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/trendfit/timeseries"
)

// generate builds an exact series a + b*sin(w*t + phi) + c*t over months 1..n.
func generate(n int, p Params) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = p.Eval(float64(i + 1))
	}
	return timeseries.New(values)
}

func TestInitialGuess(t *testing.T) {
	series := timeseries.New([]float64{40, 50, 60, 50, 40, 50, 60, 50, 40, 50})
	guess := InitialGuess(series)

	require.InDelta(t, 49.0, guess.Baseline, 1e-12)
	require.InDelta(t, 10.0, guess.Amplitude, 1e-12)
	require.InDelta(t, 2*math.Pi/10, guess.Frequency, 1e-12)
	require.Equal(t, 0.0, guess.Phase)
	require.Equal(t, 0.0, guess.Drift)
}

func TestFitRecoversKnownParameters(t *testing.T) {
	// One full cycle over twelve months, so the standard guess starts at
	// the true frequency.
	truth := Params{
		Baseline:  50,
		Amplitude: 6,
		Frequency: 2 * math.Pi / 12,
		Phase:     0.4,
		Drift:     1.5,
	}
	series := generate(12, truth)

	model, err := Fit(series)
	require.NoError(t, err)

	t.Logf("true: %+v", truth)
	t.Logf("est:  %+v", model.Params)

	require.InEpsilon(t, truth.Baseline, model.Baseline, 1e-3)
	require.InEpsilon(t, truth.Amplitude, model.Amplitude, 1e-3)
	require.InEpsilon(t, truth.Frequency, model.Frequency, 1e-3)
	require.InDelta(t, truth.Phase, model.Phase, 1e-3)
	require.InEpsilon(t, truth.Drift, model.Drift, 1e-3)

	// The fitted curve must reproduce the noise-free data.
	for i, want := range series.Values {
		require.InDelta(t, want, model.Eval(series.Months[i]), 1e-6)
	}
}

func TestFitConstantSeries(t *testing.T) {
	series := timeseries.New([]float64{47, 47, 47, 47, 47, 47, 47, 47})

	model, err := Fit(series)
	require.NoError(t, err)
	require.InDelta(t, 0.0, model.Amplitude, 1e-8)
	require.InDelta(t, 0.0, model.Drift, 1e-8)
	require.InDelta(t, 47.0, model.Baseline, 1e-8)
}

func TestFitMinimumPoints(t *testing.T) {
	// Exactly five points for five parameters must not raise a
	// degrees-of-freedom error.
	truth := Params{
		Baseline:  50,
		Amplitude: 4,
		Frequency: 2 * math.Pi / 5,
		Phase:     0.3,
		Drift:     1,
	}
	series := generate(5, truth)

	model, err := Fit(series)
	require.NoError(t, err)
	require.Less(t, model.SSE, 1e-6)
}

func TestFitErrors(t *testing.T) {
	t.Run("TooFewPoints", func(t *testing.T) {
		model, err := Fit(timeseries.New([]float64{40, 42, 45, 47}))
		require.Error(t, err)
		require.Nil(t, model)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		series := &timeseries.Series{
			Months: []float64{1, 2, 3, 4, 5, 6},
			Values: []float64{40, 42, 45, 47, 49},
		}
		model, err := Fit(series)
		require.Error(t, err)
		require.Nil(t, model)
	})
}

func TestFitNonConvergence(t *testing.T) {
	// A single optimizer iteration is not enough for this fit; the
	// exhausted budget must surface as an error, with no retry.
	series := generate(12, Params{
		Baseline:  50,
		Amplitude: 6,
		Frequency: 2 * math.Pi / 12,
		Phase:     0.4,
		Drift:     1.5,
	})

	orig := maxIterations
	maxIterations = 1
	defer func() { maxIterations = orig }()

	model, err := Fit(series)
	require.Error(t, err)
	require.Nil(t, model)
	require.Contains(t, err.Error(), "failed to converge")
}

func TestFitDeterministic(t *testing.T) {
	series := generate(10, Params{
		Baseline:  50,
		Amplitude: 3,
		Frequency: 2 * math.Pi / 10,
		Phase:     0.2,
		Drift:     2,
	})

	first, err := Fit(series)
	require.NoError(t, err)
	second, err := Fit(series)
	require.NoError(t, err)

	require.Equal(t, first.Params, second.Params)
	require.Equal(t, first.Iterations, second.Iterations)
}

func TestFitFromUsesGivenGuess(t *testing.T) {
	series := generate(10, Params{
		Baseline:  50,
		Amplitude: 3,
		Frequency: 2 * math.Pi / 10,
		Phase:     0.2,
		Drift:     2,
	})

	// Starting at the true parameters the optimizer has nothing to do.
	truth := Params{
		Baseline:  50,
		Amplitude: 3,
		Frequency: 2 * math.Pi / 10,
		Phase:     0.2,
		Drift:     2,
	}
	model, err := FitFrom(series, truth)
	require.NoError(t, err)
	require.InDelta(t, 0.0, model.SSE, 1e-12)
}

func TestCanonical(t *testing.T) {
	p := Params{
		Baseline:  50,
		Amplitude: -6,
		Frequency: -0.5,
		Phase:     0.4,
		Drift:     1.5,
	}
	c := p.canonical()

	require.GreaterOrEqual(t, c.Amplitude, 0.0)
	require.GreaterOrEqual(t, c.Frequency, 0.0)
	require.Greater(t, c.Phase, -math.Pi)
	require.LessOrEqual(t, c.Phase, math.Pi)

	// Canonicalization must not change the curve.
	for _, x := range []float64{0, 1, 2.5, 7, 11} {
		require.InDelta(t, p.Eval(x), c.Eval(x), 1e-12)
	}
}

func TestForecast(t *testing.T) {
	truth := Params{
		Baseline:  50,
		Amplitude: 3,
		Frequency: 2 * math.Pi / 10,
		Phase:     0.2,
		Drift:     2,
	}
	series := generate(10, truth)

	model, err := Fit(series)
	require.NoError(t, err)
	require.InDelta(t, truth.Eval(11), model.Forecast(11), 1e-4)
}
