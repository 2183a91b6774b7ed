// Command dpufit fits a power law to the DPU scaling benchmark, writes
// bar.png in the working directory and prints the fitted equation.
package main

import (
	"log/slog"
	"os"

	"github.com/alexshd/dpuscale"
	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	cfg := dpuscale.DefaultConfig()
	cfg.Logger = slog.Default()

	report, err := dpuscale.Analyze(dpuscale.BenchmarkDataset(), cfg)
	if err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	if err := report.WriteSummary(os.Stdout); err != nil {
		slog.Error("write summary", "error", err)
		os.Exit(1)
	}
}
