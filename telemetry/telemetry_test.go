package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSpeedStats(t *testing.T) {
	speeds := []float64{1, 2, 3, 4, 5}
	mean, std, p50, _ := SpeedStats(speeds)

	if math.Abs(mean-3) > 1e-12 {
		t.Errorf("mean = %f, want 3", mean)
	}
	if std <= 0 {
		t.Errorf("std = %f, want positive", std)
	}
	if p50 != 3 {
		t.Errorf("p50 = %f, want 3", p50)
	}
}

func TestSpeedStatsEmptyAndSingle(t *testing.T) {
	mean, std, p50, p90 := SpeedStats(nil)
	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty sample should yield zeros")
	}

	mean, std, _, _ = SpeedStats([]float64{7})
	if mean != 7 || std != 0 {
		t.Errorf("single sample: mean %f std %f, want 7 and 0", mean, std)
	}
}

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(10, false)

	if c.WindowDue(5) {
		t.Error("window due too early")
	}
	if !c.WindowDue(10) {
		t.Error("window not due at boundary")
	}

	c.RecordStep(100 * time.Microsecond)
	c.RecordStep(300 * time.Microsecond)

	stats := c.CloseWindow(10, Sample{
		Demo:      "rope",
		Particles: 25,
		Speeds:    []float64{1, 1, 1},
	})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window bounds [%d, %d], want [0, 10]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.StepMicrosMean != 200 {
		t.Errorf("step mean = %f us, want 200", stats.StepMicrosMean)
	}
	if stats.SpeedMean != 1 {
		t.Errorf("speed mean = %f, want 1", stats.SpeedMean)
	}

	// Next window starts fresh.
	if c.WindowDue(15) {
		t.Error("window due 5 ticks after close")
	}
	stats = c.CloseWindow(20, Sample{Demo: "rope"})
	if stats.StepMicrosMean != 0 {
		t.Errorf("step mean should reset, got %f", stats.StepMicrosMean)
	}
}

func TestOutputManagerCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := om.WriteStats(WindowStats{WindowEndTick: 10, Demo: "flow", Particles: 100}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteStats(WindowStats{WindowEndTick: 20, Demo: "flow", Particles: 100}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("first line is not a header: %q", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Error("header repeated in record lines")
	}
}

func TestNilOutputManagerSafe(t *testing.T) {
	var om *OutputManager
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}
