package dpuscale

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch is returned when input sequences differ in length.
	ErrLengthMismatch = errors.New("dpuscale: length mismatch")

	// ErrTooFewSamples is returned when fewer than two points are supplied.
	ErrTooFewSamples = errors.New("dpuscale: need at least 2 samples")

	// ErrDomain is returned when a value falls outside the domain of the
	// logarithm (x ≤ 0), a time is negative or not finite, or the data
	// cannot determine a fit.
	ErrDomain = errors.New("dpuscale: value outside logarithm domain")
)

// SampleSet holds one strong-scaling benchmark sweep.
//
// All three slices are parallel: index i describes the run with
// DPUCounts[i] DPUs. Times are in microseconds.
type SampleSet struct {
	DPUCounts     []int     // Number of DPUs (strictly increasing by convention)
	RunTimes      []float64 // DPU kernel time
	InterDPUTimes []float64 // Time spent moving data between DPUs
}

// Len returns the number of DPU counts in the set.
func (s SampleSet) Len() int {
	return len(s.DPUCounts)
}

// Validate checks shape and domain before any arithmetic happens.
//
// Errors wrap ErrLengthMismatch, ErrTooFewSamples or ErrDomain and name
// the offending index.
func (s SampleSet) Validate() error {
	n := len(s.DPUCounts)
	if len(s.RunTimes) != n || len(s.InterDPUTimes) != n {
		return fmt.Errorf("%w: %d DPU counts, %d run times, %d inter-DPU times",
			ErrLengthMismatch, n, len(s.RunTimes), len(s.InterDPUTimes))
	}
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}

	for i := 0; i < n; i++ {
		if s.DPUCounts[i] <= 0 {
			return fmt.Errorf("%w: DPU count[%d] = %d", ErrDomain, i, s.DPUCounts[i])
		}
		if !finite(s.RunTimes[i]) || s.RunTimes[i] < 0 {
			return fmt.Errorf("%w: run time[%d] = %g", ErrDomain, i, s.RunTimes[i])
		}
		if !finite(s.InterDPUTimes[i]) || s.InterDPUTimes[i] < 0 {
			return fmt.Errorf("%w: inter-DPU time[%d] = %g", ErrDomain, i, s.InterDPUTimes[i])
		}
		if s.RunTimes[i]+s.InterDPUTimes[i] <= 0 {
			return fmt.Errorf("%w: total time[%d] = 0", ErrDomain, i)
		}
	}

	return nil
}

// Counts returns the DPU counts as float64 for regression and plotting.
func (s SampleSet) Counts() []float64 {
	xs := make([]float64, len(s.DPUCounts))
	for i, c := range s.DPUCounts {
		xs[i] = float64(c)
	}
	return xs
}

// TotalTimes returns RunTimes[i] + InterDPUTimes[i] for every i.
// The result has the same length and ordering as DPUCounts.
func (s SampleSet) TotalTimes() ([]float64, error) {
	if len(s.RunTimes) != len(s.InterDPUTimes) || len(s.RunTimes) != len(s.DPUCounts) {
		return nil, fmt.Errorf("%w: %d DPU counts, %d run times, %d inter-DPU times",
			ErrLengthMismatch, len(s.DPUCounts), len(s.RunTimes), len(s.InterDPUTimes))
	}

	total := make([]float64, len(s.RunTimes))
	floats.AddTo(total, s.RunTimes, s.InterDPUTimes)
	return total, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
