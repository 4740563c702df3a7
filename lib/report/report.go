package report

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/colbench/colbench/lib/harness"
)

// Report bundles the results of one benchmark suite run together with the
// parameters and platform that produced them.
type Report struct {
	RunID       string           `json:"runId"`
	StartedAt   time.Time        `json:"startedAt"`
	GoVersion   string           `json:"goVersion"`
	OS          string           `json:"os"`
	Arch        string           `json:"arch"`
	NumCPU      int              `json:"numCpu"`
	DatasetSize int              `json:"datasetSize"`
	Seed        int64            `json:"seed"`
	Iterations  int              `json:"iterations"`
	Results     []harness.Result `json:"results"`
}

// New creates an empty report for a starting suite run. The run ID is a
// fresh UUID; platform fields are captured from the current runtime.
func New(datasetSize int, seed int64, iterations int) *Report {
	return &Report{
		RunID:       uuid.New().String(),
		StartedAt:   time.Now(),
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		DatasetSize: datasetSize,
		Seed:        seed,
		Iterations:  iterations,
	}
}

// Append records one measured operation.
func (r *Report) Append(result harness.Result) {
	r.Results = append(r.Results, result)
}

// WriteSummaryLine prints the human-readable result line for one operation:
// average to one decimal place, min/max as whole milliseconds.
func WriteSummaryLine(w io.Writer, result harness.Result) {
	fmt.Fprintf(w, "%-25s: Avg: %.1fms, Min: %dms, Max: %dms\n",
		result.Name, result.AvgMs, int64(result.MinMs), int64(result.MaxMs))
}
