package dpuscale

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestNewChart_LogAxes(t *testing.T) {
	s := BenchmarkDataset()
	fit, err := FitSamples(s)
	require.NoError(t, err)

	cfg := DefaultChartConfig()
	p, err := NewChart(s, fit, cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.Title, p.Title.Text)
	assert.Equal(t, "Number of DPUs", p.X.Label.Text)
	assert.Equal(t, "Total Time (µs)", p.Y.Label.Text)
	assert.IsType(t, plot.LogScale{}, p.X.Scale)
	assert.IsType(t, plot.LogScale{}, p.Y.Scale)

	// Axis range covers every measured point.
	assert.LessOrEqual(t, p.X.Min, 1.0)
	assert.GreaterOrEqual(t, p.X.Max, 512.0)
	assert.LessOrEqual(t, p.Y.Min, 815.165+19269.901)
	assert.GreaterOrEqual(t, p.Y.Max, 712765.421)
}

func TestNewChart_InvalidSamples(t *testing.T) {
	s := SampleSet{
		DPUCounts:     []int{0, 2},
		RunTimes:      []float64{10, 5},
		InterDPUTimes: []float64{1, 1},
	}

	_, err := NewChart(s, PowerLaw{A: 1, B: -1}, DefaultChartConfig())
	require.ErrorIs(t, err, ErrDomain)
}

func TestWriteChart_PNG(t *testing.T) {
	s := BenchmarkDataset()
	fit, err := FitSamples(s)
	require.NoError(t, err)

	cfg := DefaultChartConfig()
	p, err := NewChart(s, fit, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, p, cfg, "png"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), bounds.Dy(), "chart should be wider than tall")
	t.Logf("chart: %dx%d", bounds.Dx(), bounds.Dy())
}

func TestSaveChart_Overwrites(t *testing.T) {
	s := BenchmarkDataset()
	fit, err := FitSamples(s)
	require.NoError(t, err)

	cfg := DefaultChartConfig()
	p, err := NewChart(s, fit, cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bar.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, SaveChart(path, p, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "expected PNG signature")
}

func TestSaveChart_MissingDirectory(t *testing.T) {
	s := BenchmarkDataset()
	fit, err := FitSamples(s)
	require.NoError(t, err)

	cfg := DefaultChartConfig()
	p, err := NewChart(s, fit, cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "missing", "bar.png")
	err = SaveChart(path, p, cfg)
	require.Error(t, err)
	t.Logf("error: %v", err)
}
