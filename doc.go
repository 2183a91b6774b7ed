// Package dpuscale fits a power law to DPU strong-scaling measurements.
//
// # Overview
//
// A benchmark sweep records, for each DPU count N, the DPU run time and
// the inter-DPU time. Their sum is the total time T(N). dpuscale fits
//
//	T(N) = a · N^b
//
// by ordinary least squares in log-log space, where the power law is a
// straight line:
//
//	ln T = ln a + b · ln N
//
// The slope is the exponent b and a = e^intercept. b = -1 is perfect
// strong scaling; a flatter slope means the inter-DPU time is eating the
// gains.
//
// # Quick Start
//
//	report, err := dpuscale.Analyze(dpuscale.BenchmarkDataset(), dpuscale.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteSummary(os.Stdout)
//	// Power Law Equation: Total Time = 4.90e+05 * DPUs^-0.57
//
// Analyze writes a log-log chart (bar.png by default) with the measured
// points and the dashed fitted curve.
//
// # Scaling View
//
// The same sweep is also read as throughput (runs per second) and fitted
// to the Universal Scalability Law:
//
//	C(N) = λN / (1 + α(N-1) + βN(N-1))
//
// β captures the coordination cost that inter-DPU transfers add.
//
// # Errors
//
// Inputs are validated before any arithmetic. Mismatched lengths return
// ErrLengthMismatch, fewer than two points ErrTooFewSamples, and values
// outside the logarithm domain ErrDomain. A failed run never writes a
// chart.
//
// # Testing
//
//	func TestSweep(t *testing.T) {
//	    s := loadSweep()
//	    dpuscale.AssertNegativeExponent(t, s)
//	    dpuscale.AssertGoodFit(t, s, dpuscale.DefaultAssertionConfig())
//	    dpuscale.PrintAnalysis(t, s)
//	}
package dpuscale
