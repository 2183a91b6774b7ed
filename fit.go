package dpuscale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultSmoothPoints is the number of points used to draw a fitted curve.
const DefaultSmoothPoints = 100

// PowerLaw is the model y = A * x^B.
type PowerLaw struct {
	A        float64 // Scale (e^intercept of the log-log line)
	B        float64 // Exponent (slope of the log-log line)
	RSquared float64 // R² of the fit in log-log space (1.0 = perfect)
}

// FitPowerLaw fits y = a * x^b by ordinary least squares on (ln x, ln y).
//
// Taking logs turns the power law into a straight line:
//
//	ln y = ln a + b · ln x
//
// so the slope of the regression is b and a = e^intercept. With exactly
// two points the line passes through both and the fit is exact.
//
// Every x and y must be strictly positive; a violation returns ErrDomain
// before any regression is attempted.
func FitPowerLaw(x, y []float64) (PowerLaw, error) {
	if len(x) != len(y) {
		return PowerLaw{}, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return PowerLaw{}, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(x))
	}

	logX, err := logAll(x, "x")
	if err != nil {
		return PowerLaw{}, err
	}
	logY, err := logAll(y, "y")
	if err != nil {
		return PowerLaw{}, err
	}

	intercept, slope := stat.LinearRegression(logX, logY, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		// All x equal: the line is vertical in log space.
		return PowerLaw{}, fmt.Errorf("%w: x values do not span a range", ErrDomain)
	}

	return PowerLaw{
		A:        math.Exp(intercept),
		B:        slope,
		RSquared: stat.RSquared(logX, logY, nil, intercept, slope),
	}, nil
}

// FitSamples validates the sample set and fits total time against DPU count.
func FitSamples(s SampleSet) (PowerLaw, error) {
	if err := s.Validate(); err != nil {
		return PowerLaw{}, err
	}

	total, err := s.TotalTimes()
	if err != nil {
		return PowerLaw{}, err
	}

	return FitPowerLaw(s.Counts(), total)
}

// logAll returns ln(v) for each value, or ErrDomain at the first value
// that is ≤ 0, NaN or infinite.
func logAll(values []float64, axis string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s[%d] = %g", ErrDomain, axis, i, v)
		}
		out[i] = math.Log(v)
	}
	return out, nil
}

// Predict evaluates A * x^B.
func (p PowerLaw) Predict(x float64) float64 {
	return p.A * math.Pow(x, p.B)
}

// Curve samples the model at n evenly spaced points over [lo, hi].
// n < 2 falls back to DefaultSmoothPoints.
func (p PowerLaw) Curve(lo, hi float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = DefaultSmoothPoints
	}

	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = p.Predict(x)
	}
	return xs, ys
}

// Equation renders the fit as "Total Time = a * DPUs^b".
func (p PowerLaw) Equation() string {
	return fmt.Sprintf("Total Time = %.2e * DPUs^%.2f", p.A, p.B)
}

// Label is the short legend form of the fit.
func (p PowerLaw) Label() string {
	return fmt.Sprintf("Fit: %.2e * x^%.2f", p.A, p.B)
}
