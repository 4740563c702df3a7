package report

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// WriteJSON writes the full report, raw samples included, as an indented
// JSON document to path.
func WriteJSON(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
