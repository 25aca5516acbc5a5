package telemetry

import (
	"log/slog"
	"time"
)

// Sample is one end-of-window snapshot of the active demo's state.
type Sample struct {
	Demo        string
	Particles   int
	Constraints int
	Speeds      []float64
	MaxResidual float64
}

// Collector accumulates per-tick measurements and emits WindowStats every
// windowTicks ticks.
type Collector struct {
	windowTicks int

	windowStartTick int
	stepDurTotal    time.Duration
	stepCount       int

	logStats bool
}

// NewCollector creates a collector with the given window length in ticks.
func NewCollector(windowTicks int, logStats bool) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks, logStats: logStats}
}

// RecordStep records the wall time of one physics step.
func (c *Collector) RecordStep(d time.Duration) {
	c.stepDurTotal += d
	c.stepCount++
}

// WindowDue reports whether the window ending at the given tick is complete.
func (c *Collector) WindowDue(tick int) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// CloseWindow builds the stats for the finished window from the end-of-window
// sample, resets the accumulators, and optionally logs the result.
func (c *Collector) CloseWindow(tick int, s Sample) WindowStats {
	mean, std, p50, p90 := SpeedStats(s.Speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		Demo:            s.Demo,
		Particles:       s.Particles,
		Constraints:     s.Constraints,
		SpeedMean:       mean,
		SpeedStd:        std,
		SpeedP50:        p50,
		SpeedP90:        p90,
		MaxResidual:     s.MaxResidual,
	}
	if c.stepCount > 0 {
		stats.StepMicrosMean = float64(c.stepDurTotal.Microseconds()) / float64(c.stepCount)
	}

	c.windowStartTick = tick
	c.stepDurTotal = 0
	c.stepCount = 0

	if c.logStats {
		slog.Info("window stats",
			"demo", stats.Demo,
			"tick", stats.WindowEndTick,
			"particles", stats.Particles,
			"constraints", stats.Constraints,
			"speed_mean", stats.SpeedMean,
			"speed_p90", stats.SpeedP90,
			"max_residual", stats.MaxResidual,
			"step_us_mean", stats.StepMicrosMean,
		)
	}

	return stats
}
