package harness

import (
	"math"
	"testing"
	"time"
)

func TestMeasureSampleCountAndOrdering(t *testing.T) {
	result := Measure("noop", Options{Iterations: 5}, func() {})

	if result.Name != "noop" {
		t.Errorf("expected name %q, got %q", "noop", result.Name)
	}
	if len(result.Samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(result.Samples))
	}
	if result.MinMs > result.AvgMs || result.AvgMs > result.MaxMs {
		t.Errorf("expected min <= avg <= max, got %.6f / %.6f / %.6f",
			result.MinMs, result.AvgMs, result.MaxMs)
	}
}

func TestMeasureAverageMatchesSamples(t *testing.T) {
	result := Measure("spin", Options{Iterations: 5}, func() {
		deadline := time.Now().Add(time.Millisecond)
		for time.Now().Before(deadline) {
		}
	})

	var sum float64
	minSample := result.Samples[0]
	maxSample := result.Samples[0]
	for _, s := range result.Samples {
		sum += float64(s.Nanoseconds())
		if s < minSample {
			minSample = s
		}
		if s > maxSample {
			maxSample = s
		}
	}
	wantAvg := sum / float64(len(result.Samples)) / float64(time.Millisecond)

	if math.Abs(result.AvgMs-wantAvg) > 1e-6 {
		t.Errorf("expected average %.9f, got %.9f", wantAvg, result.AvgMs)
	}
	if got := float64(minSample.Nanoseconds()) / float64(time.Millisecond); result.MinMs != got {
		t.Errorf("expected min %.9f, got %.9f", got, result.MinMs)
	}
	if got := float64(maxSample.Nanoseconds()) / float64(time.Millisecond); result.MaxMs != got {
		t.Errorf("expected max %.9f, got %.9f", got, result.MaxMs)
	}
}

func TestMeasureDiscardsWarmup(t *testing.T) {
	calls := 0
	result := Measure("counting", Options{Iterations: 3}, func() { calls++ })

	// One warm-up plus three timed runs
	if calls != 4 {
		t.Errorf("expected 4 invocations, got %d", calls)
	}
	if len(result.Samples) != 3 {
		t.Errorf("expected 3 samples, got %d", len(result.Samples))
	}
}

func TestMeasureDefaultIterations(t *testing.T) {
	result := Measure("defaults", Options{}, func() {})
	if len(result.Samples) != DefaultIterations {
		t.Errorf("expected %d samples, got %d", DefaultIterations, len(result.Samples))
	}
}

func TestMeasureWithForcedGC(t *testing.T) {
	result := Measure("gc", Options{Iterations: 2, ForceGC: true}, func() {})
	if len(result.Samples) != 2 {
		t.Errorf("expected 2 samples, got %d", len(result.Samples))
	}
}
