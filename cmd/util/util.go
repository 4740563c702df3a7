package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colbench/colbench/lib/dataset"
	"github.com/colbench/colbench/lib/harness"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupBenchFlags adds the common suite flags to a command. Defaults match
// the canonical benchmark parameters.
func SetupBenchFlags(cmd *cobra.Command) {
	key := "size"
	cmd.Flags().Int(key, dataset.DefaultSize, WrapString("Number of synthetic persons to generate"))

	key = "seed"
	cmd.Flags().Int64(key, dataset.DefaultSeed, WrapString("Seed for the deterministic data generator"))

	key = "iterations"
	cmd.Flags().Int(key, harness.DefaultIterations, WrapString("Timed runs per query (one extra warm-up run is always discarded)"))

	key = "skip"
	cmd.Flags().String(key, "", WrapString("Queries to skip (comma separated - e.g. complex,strings)"))

	key = "gc"
	cmd.Flags().Bool(key, true, WrapString("Force a garbage-collection cycle before each timed run"))

	key = "csv"
	cmd.Flags().String(key, "", WrapString("Optional path to save results as CSV"))

	key = "json"
	cmd.Flags().String(key, "", WrapString("Optional path to save the full report as JSON"))

	key = "metrics"
	cmd.Flags().String(key, "", WrapString("Optional path to save results in Prometheus text format"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("colbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BenchConfig holds the resolved suite parameters.
type BenchConfig struct {
	Size        int
	Seed        int64
	Iterations  int
	Skip        []string
	ForceGC     bool
	CSVPath     string
	JSONPath    string
	MetricsPath string
	DBPath      string
}

// String renders the configuration for the suite preamble.
func (c *BenchConfig) String() string {
	return fmt.Sprintf("Size: %d\nSeed: %d\nIterations: %d\nForce GC: %t",
		c.Size, c.Seed, c.Iterations, c.ForceGC)
}

// GetBenchConfig reads the suite configuration from viper
func GetBenchConfig() *BenchConfig {
	conf := &BenchConfig{
		Size:        viper.GetInt("size"),
		Seed:        viper.GetInt64("seed"),
		Iterations:  viper.GetInt("iterations"),
		ForceGC:     viper.GetBool("gc"),
		CSVPath:     viper.GetString("csv"),
		JSONPath:    viper.GetString("json"),
		MetricsPath: viper.GetString("metrics"),
		DBPath:      viper.GetString("db"),
	}

	if skip := viper.GetString("skip"); skip != "" {
		conf.Skip = strings.Split(skip, ",")
	}

	return conf
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
