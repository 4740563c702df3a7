package report

import (
	"fmt"
	"io"
	"os"

	"github.com/VictoriaMetrics/metrics"
)

// WriteMetrics writes the report as Prometheus text exposition: one gauge
// per query and statistic, labeled with the run ID, plus the suite
// parameters.
func WriteMetrics(w io.Writer, r *Report) {
	set := metrics.NewSet()

	gauge := func(name, query, stat string, value float64) {
		fullName := fmt.Sprintf(`%s{run_id=%q,query=%q,stat=%q}`, name, r.RunID, query, stat)
		set.NewGauge(fullName, func() float64 { return value })
	}

	for _, result := range r.Results {
		gauge("colbench_query_duration_ms", result.Name, "avg", result.AvgMs)
		gauge("colbench_query_duration_ms", result.Name, "min", result.MinMs)
		gauge("colbench_query_duration_ms", result.Name, "max", result.MaxMs)
	}

	size := float64(r.DatasetSize)
	set.NewGauge(fmt.Sprintf(`colbench_dataset_size{run_id=%q}`, r.RunID), func() float64 { return size })
	iterations := float64(r.Iterations)
	set.NewGauge(fmt.Sprintf(`colbench_iterations{run_id=%q}`, r.RunID), func() float64 { return iterations })

	set.WritePrometheus(w)
}

// WriteMetricsFile writes the Prometheus exposition to path.
func WriteMetricsFile(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer file.Close()

	WriteMetrics(file, r)
	return nil
}
