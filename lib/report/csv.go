package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// WriteCSV writes one row per measured query to path, overwriting any
// existing file. Raw samples are joined into a single column as nanosecond
// counts so the file round-trips full precision.
func WriteCSV(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"RunID", "StartedAt", "GoVersion", "NumCPU",
		"DatasetSize", "Seed", "Iterations",
		"Query", "AvgMs", "MinMs", "MaxMs", "SamplesNs",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range r.Results {
		samples := make([]string, len(result.Samples))
		for i, s := range result.Samples {
			samples[i] = strconv.FormatInt(s.Nanoseconds(), 10)
		}

		row := []string{
			r.RunID,
			r.StartedAt.Format(time.RFC3339),
			r.GoVersion,
			strconv.Itoa(r.NumCPU),
			strconv.Itoa(r.DatasetSize),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Iterations),
			result.Name,
			fmt.Sprintf("%.3f", result.AvgMs),
			fmt.Sprintf("%.3f", result.MinMs),
			fmt.Sprintf("%.3f", result.MaxMs),
			strings.Join(samples, ";"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for query %s: %w", result.Name, err)
		}
	}

	return nil
}
