package dpuscale

import (
	"fmt"
	"io"
	"log/slog"
)

// Config controls a single analysis run.
type Config struct {
	OutputPath string       // Chart file, overwritten on every run
	Chart      ChartConfig  // Chart layout
	Logger     *slog.Logger // nil = slog.Default()
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutputPath: "bar.png",
		Chart:      DefaultChartConfig(),
	}
}

// Report is everything one run produced.
type Report struct {
	Samples   SampleSet
	Fit       PowerLaw
	Scaling   []ScalingPoint
	USL       *USLCoefficients // nil when the USL system could not be solved
	ChartPath string
}

// Analyze fits the power law, derives the scaling table and writes the chart.
//
// Invalid samples fail before anything is rendered, so a domain error
// never leaves a chart behind.
func Analyze(s SampleSet, cfg Config) (Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Chart == (ChartConfig{}) {
		cfg.Chart = DefaultChartConfig()
	}

	if err := s.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid samples: %w", err)
	}

	// Validated once here; the unexported helpers below trust their input.
	counts := s.Counts()
	total, err := s.TotalTimes()
	if err != nil {
		return Report{}, fmt.Errorf("invalid samples: %w", err)
	}

	fit, err := FitPowerLaw(counts, total)
	if err != nil {
		return Report{}, fmt.Errorf("fit power law: %w", err)
	}
	logger.Info("power law fitted",
		"a", fit.A,
		"b", fit.B,
		"r2", fit.RSquared,
		"samples", s.Len())

	points := scalingPoints(counts, total)
	for _, p := range points {
		logger.Debug("scaling point",
			"dpus", p.DPUs,
			"total_us", p.TotalTime,
			"speedup", p.Speedup,
			"efficiency", p.Efficiency)
	}

	report := Report{
		Samples: s,
		Fit:     fit,
		Scaling: points,
	}

	if len(points) >= 3 {
		usl, err := FitUSL(points)
		if err != nil {
			logger.Warn("USL fit skipped", "error", err)
		} else {
			report.USL = &usl
			logger.Info("USL fitted",
				"lambda", usl.Lambda,
				"alpha", usl.Alpha,
				"beta", usl.Beta,
				"r2", usl.RSquared)
		}
	}

	p, err := newChart(counts, total, fit, cfg.Chart)
	if err != nil {
		return Report{}, fmt.Errorf("build chart: %w", err)
	}
	if err := SaveChart(cfg.OutputPath, p, cfg.Chart); err != nil {
		return Report{}, err
	}
	report.ChartPath = cfg.OutputPath
	logger.Info("chart written", "path", cfg.OutputPath)

	return report, nil
}

// WriteSummary prints the fitted equation as a single line.
func (r Report) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Power Law Equation: %s\n", r.Fit.Equation())
	return err
}
