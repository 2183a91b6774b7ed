package dpuscale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalTimes_Dataset(t *testing.T) {
	s := BenchmarkDataset()

	total, err := s.TotalTimes()
	require.NoError(t, err)
	require.Len(t, total, s.Len())

	assert.InDelta(t, 712765.421, total[0], 1e-6)
	assert.InDelta(t, 815.165+19269.901, total[len(total)-1], 1e-6)
}

func TestValidate_Dataset(t *testing.T) {
	require.NoError(t, BenchmarkDataset().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		samples SampleSet
		want    error
	}{
		{
			name: "length mismatch",
			samples: SampleSet{
				DPUCounts:     []int{1, 2, 4},
				RunTimes:      []float64{10, 5},
				InterDPUTimes: []float64{1, 1, 1},
			},
			want: ErrLengthMismatch,
		},
		{
			name: "single sample",
			samples: SampleSet{
				DPUCounts:     []int{1},
				RunTimes:      []float64{10},
				InterDPUTimes: []float64{1},
			},
			want: ErrTooFewSamples,
		},
		{
			name: "zero DPUs",
			samples: SampleSet{
				DPUCounts:     []int{0, 2},
				RunTimes:      []float64{10, 5},
				InterDPUTimes: []float64{1, 1},
			},
			want: ErrDomain,
		},
		{
			name: "negative DPUs",
			samples: SampleSet{
				DPUCounts:     []int{-4, 2},
				RunTimes:      []float64{10, 5},
				InterDPUTimes: []float64{1, 1},
			},
			want: ErrDomain,
		},
		{
			name: "negative run time",
			samples: SampleSet{
				DPUCounts:     []int{1, 2},
				RunTimes:      []float64{10, -5},
				InterDPUTimes: []float64{1, 1},
			},
			want: ErrDomain,
		},
		{
			name: "infinite inter-DPU time",
			samples: SampleSet{
				DPUCounts:     []int{1, 2},
				RunTimes:      []float64{10, 5},
				InterDPUTimes: []float64{1, math.Inf(1)},
			},
			want: ErrDomain,
		},
		{
			name: "NaN run time",
			samples: SampleSet{
				DPUCounts:     []int{1, 2},
				RunTimes:      []float64{math.NaN(), 5},
				InterDPUTimes: []float64{1, 1},
			},
			want: ErrDomain,
		},
		{
			name: "zero total time",
			samples: SampleSet{
				DPUCounts:     []int{1, 2},
				RunTimes:      []float64{10, 0},
				InterDPUTimes: []float64{1, 0},
			},
			want: ErrDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.samples.Validate()
			require.ErrorIs(t, err, tt.want)
			t.Logf("error: %v", err)
		})
	}
}

func TestTotalTimes_LengthMismatch(t *testing.T) {
	s := SampleSet{
		DPUCounts:     []int{1, 2},
		RunTimes:      []float64{10, 5},
		InterDPUTimes: []float64{1},
	}

	_, err := s.TotalTimes()
	require.ErrorIs(t, err, ErrLengthMismatch)
}
