package harness

import (
	"runtime"
	"time"

	"github.com/rcrowley/go-metrics"
)

// DefaultIterations is the number of timed runs per operation.
const DefaultIterations = 5

// Operation is one benchmarked unit of work. It receives its input via
// closure and must not retain state between invocations.
type Operation func()

// Options control how an operation is measured.
type Options struct {
	// Iterations is the number of timed runs after the warm-up.
	// Zero or negative falls back to DefaultIterations.
	Iterations int

	// ForceGC runs a full garbage-collection cycle before each timed run
	// to keep collector pauses out of the samples.
	ForceGC bool
}

// Result holds the summary of one measured operation. Samples are the raw
// timed runs in execution order; the millisecond summaries derive from them.
type Result struct {
	Name    string
	Samples []time.Duration
	AvgMs   float64
	MinMs   float64
	MaxMs   float64
}

// Measure runs op once as a discarded warm-up, then Options.Iterations timed
// runs, and returns the summarized samples.
func Measure(name string, opts Options, op Operation) Result {
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	// Warm-up run, never recorded
	op()

	hist := metrics.NewHistogram(metrics.NewUniformSample(iterations))
	samples := make([]time.Duration, 0, iterations)

	for i := 0; i < iterations; i++ {
		if opts.ForceGC {
			runtime.GC()
		}

		start := time.Now()
		op()
		elapsed := time.Since(start)

		samples = append(samples, elapsed)
		hist.Update(elapsed.Nanoseconds())
	}

	return Result{
		Name:    name,
		Samples: samples,
		AvgMs:   hist.Mean() / float64(time.Millisecond),
		MinMs:   float64(hist.Min()) / float64(time.Millisecond),
		MaxMs:   float64(hist.Max()) / float64(time.Millisecond),
	}
}
