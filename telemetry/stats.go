// Package telemetry aggregates per-frame simulation statistics into time
// windows and writes them to structured logs and CSV files.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	Demo            string  `csv:"demo"`
	Particles       int     `csv:"particles"`
	Constraints     int     `csv:"constraints"`
	SpeedMean       float64 `csv:"speed_mean"`
	SpeedStd        float64 `csv:"speed_std"`
	SpeedP50        float64 `csv:"speed_p50"`
	SpeedP90        float64 `csv:"speed_p90"`
	MaxResidual     float64 `csv:"max_residual"`
	StepMicrosMean  float64 `csv:"step_us_mean"`
}

// SpeedStats computes mean, standard deviation and percentiles over the
// given particle speeds. Returns zeros for an empty sample.
func SpeedStats(speeds []float64) (mean, std, p50, p90 float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}

	mean, std = stat.MeanStdDev(speeds, nil)
	if len(speeds) == 1 {
		std = 0
	}

	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}
