package dpuscale

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	actualColor = color.RGBA{R: 128, G: 0, B: 128, A: 255} // purple
	fitColor    = color.RGBA{R: 191, G: 0, B: 191, A: 255} // magenta
)

// ChartConfig controls the log-log chart.
type ChartConfig struct {
	Title        string
	XLabel       string
	YLabel       string
	Width        vg.Length
	Height       vg.Length
	SmoothPoints int // Points on the fitted curve
}

// DefaultChartConfig returns the 10×5 inch chart layout.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:        "DPU Number vs. Running Time + Inter-DPU Time (Power Law Fit)",
		XLabel:       "Number of DPUs",
		YLabel:       "Total Time (µs)",
		Width:        10 * vg.Inch,
		Height:       5 * vg.Inch,
		SmoothPoints: DefaultSmoothPoints,
	}
}

// NewChart builds a log-log plot of the measured total times with the
// fitted power law drawn as a dashed curve over [min, max] DPU count.
//
// The samples must already be valid: log axes cannot show values ≤ 0.
func NewChart(s SampleSet, fit PowerLaw, cfg ChartConfig) (*plot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	total, err := s.TotalTimes()
	if err != nil {
		return nil, err
	}

	return newChart(s.Counts(), total, fit, cfg)
}

// newChart expects validated, equal-length, strictly positive inputs.
func newChart(counts, total []float64, fit PowerLaw, cfg ChartConfig) (*plot.Plot, error) {
	actual := make(plotter.XYs, len(counts))
	for i := range counts {
		actual[i].X = counts[i]
		actual[i].Y = total[i]
	}

	xs, ys := fit.Curve(floats.Min(counts), floats.Max(counts), cfg.SmoothPoints)
	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i].X = xs[i]
		curve[i].Y = ys[i]
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	grid.Vertical.Width = vg.Points(0.5)
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Width = vg.Points(0.5)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	scatter, err := plotter.NewScatter(actual)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyle.Color = actualColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("fit line: %w", err)
	}
	line.LineStyle.Color = fitColor
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(grid, scatter, line)
	p.Legend.Add("Total Time (Actual)", scatter)
	p.Legend.Add(fit.Label(), line)
	p.Legend.Top = true

	return p, nil
}

// WriteChart renders p to w in the given format ("png", "svg", "pdf", ...).
func WriteChart(w io.Writer, p *plot.Plot, cfg ChartConfig, format string) error {
	wt, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// SaveChart writes p to path, replacing any existing file.
// The image format follows the file extension.
func SaveChart(path string, p *plot.Plot, cfg ChartConfig) error {
	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
