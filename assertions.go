package dpuscale

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for power-law properties.
type AssertionConfig struct {
	// Relative tolerance when comparing recovered parameters
	RelTolerance float64

	// Minimum R² (log space) for an acceptable fit
	MinRSquared float64
}

// DefaultAssertionConfig returns tight tolerances for noise-free data.
// Lower MinRSquared before applying it to measured sweeps.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTolerance: 1e-9,
		MinRSquared:  0.95,
	}
}

// AssertRecoversPowerLaw verifies that fitting s gives back (wantA, wantB).
//
// Use it with data generated from y = wantA * x^wantB: the log-log fit
// is exact for noise-free input.
func AssertRecoversPowerLaw(t *testing.T, s SampleSet, wantA, wantB float64, cfg AssertionConfig) PowerLaw {
	t.Helper()

	fit, err := FitSamples(s)
	if err != nil {
		t.Fatalf("Failed to fit power law: %v", err)
	}

	if !relClose(fit.A, wantA, cfg.RelTolerance) {
		t.Errorf("Scale not recovered: a = %.12g (want %.12g, rel tol %g)", fit.A, wantA, cfg.RelTolerance)
	}
	if !relClose(fit.B, wantB, cfg.RelTolerance) {
		t.Errorf("Exponent not recovered: b = %.12g (want %.12g, rel tol %g)", fit.B, wantB, cfg.RelTolerance)
	}

	t.Logf("✓ Recovered %s (R² = %.6f)", fit.Equation(), fit.RSquared)
	return fit
}

// AssertNegativeExponent verifies total time falls as DPUs are added.
func AssertNegativeExponent(t *testing.T, s SampleSet) PowerLaw {
	t.Helper()

	fit, err := FitSamples(s)
	if err != nil {
		t.Fatalf("Failed to fit power law: %v", err)
	}

	if fit.B >= 0 {
		t.Errorf("Exponent not negative: b = %.4f\n"+
			"Total time does not shrink with more DPUs.", fit.B)
	}

	t.Logf("✓ Negative exponent: b = %.4f", fit.B)
	return fit
}

// AssertGoodFit verifies the log-log line explains the data.
func AssertGoodFit(t *testing.T, s SampleSet, cfg AssertionConfig) PowerLaw {
	t.Helper()

	fit, err := FitSamples(s)
	if err != nil {
		t.Fatalf("Failed to fit power law: %v", err)
	}

	if fit.RSquared < cfg.MinRSquared {
		t.Errorf("Poor model fit: R² = %.4f (min: %.4f)\n"+
			"Total time does not follow a single power law.", fit.RSquared, cfg.MinRSquared)
	}

	t.Logf("✓ Model fit: R² = %.4f", fit.RSquared)
	return fit
}

// PrintAnalysis outputs the fit and the scaling table to the test log.
func PrintAnalysis(t *testing.T, s SampleSet) {
	t.Helper()

	fit, err := FitSamples(s)
	if err != nil {
		t.Fatalf("Failed to fit power law: %v", err)
	}
	points, err := ScalingPoints(s)
	if err != nil {
		t.Fatalf("Failed to compute scaling points: %v", err)
	}

	t.Logf("\n=== Power Law Analysis ===")
	t.Logf("  %s", fit.Equation())
	t.Logf("  R² (log-log) = %.4f", fit.RSquared)

	t.Logf("\nMeasured vs Predicted:")
	t.Logf("  DPUs  Measured (µs)  Predicted (µs)  Speedup  Efficiency")
	t.Logf("  ----  -------------  --------------  -------  ----------")
	for _, p := range points {
		t.Logf("  %-4d  %13.1f  %14.1f  %7.2f  %9.1f%%",
			p.DPUs, p.TotalTime, fit.Predict(float64(p.DPUs)), p.Speedup, p.Efficiency*100)
	}

	if len(points) < 3 {
		return
	}
	usl, err := FitUSL(points)
	if err != nil {
		t.Logf("\nUSL: %v", err)
		return
	}
	t.Logf("\nUSL: λ=%.4f runs/sec, α=%.6f, β=%.8f, R²=%.4f",
		usl.Lambda, usl.Alpha, usl.Beta, usl.RSquared)
}

func relClose(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}
