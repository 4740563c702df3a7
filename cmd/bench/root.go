package bench

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colbench/colbench/cmd/util"
	"github.com/colbench/colbench/lib/dataset"
	"github.com/colbench/colbench/lib/harness"
	"github.com/colbench/colbench/lib/model"
	"github.com/colbench/colbench/lib/query"
	"github.com/colbench/colbench/lib/report"
)

// suiteWarmupSize is how many persons the initial suite warm-up runs over.
const suiteWarmupSize = 1000

var (
	// RunCmd executes the full benchmark suite
	RunCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run the collection-query benchmark suite",
		Long:    "",
		RunE:    runSuite,
		PreRunE: processBenchConfig,
	}

	benchConfig *util.BenchConfig
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	util.SetupBenchFlags(RunCmd)
	key := "db"
	RunCmd.Flags().String(key, "", util.WrapString("Optional path to a SQLite database for keeping results across runs"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	benchConfig = util.GetBenchConfig()

	if benchConfig.Size < 0 {
		return fmt.Errorf("invalid dataset size %d", benchConfig.Size)
	}

	return nil
}

// namedQuery pairs a benchmark with its skip key and display name.
type namedQuery struct {
	key  string
	name string
	op   func([]model.Person) int
}

// suite lists the five measured queries. Each op returns the result length
// as a sink for the computed result.
var suite = []namedQuery{
	{"complex", "Complex Operations", func(p []model.Person) int { return len(query.ComplexOperations(p)) }},
	{"groupby", "GroupBy with Aggregation", func(p []model.Person) int { return len(query.GroupByAggregation(p)) }},
	{"strings", "String Operations", func(p []model.Person) int { return len(query.StringOperations(p)) }},
	{"nested", "Nested Queries", func(p []model.Person) int { return len(query.NestedQueries(p)) }},
	{"projection", "Projection with Filter", func(p []model.Person) int { return len(query.ProjectionWithFilter(p)) }},
}

func runSuite(_ *cobra.Command, _ []string) error {
	fmt.Printf("Running on: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Logical processors: %d\n", runtime.NumCPU())
	fmt.Println()

	// Print configuration
	fmt.Println("Configuration:")
	fmt.Println(benchConfig.String())
	fmt.Println()

	fmt.Println("Generating test data...")
	people := dataset.Generate(benchConfig.Size, benchConfig.Seed)

	// Prime caches before any timing starts
	fmt.Println("Warming up...")
	warmup := people
	if len(warmup) > suiteWarmupSize {
		warmup = warmup[:suiteWarmupSize]
	}
	query.ComplexOperations(warmup)

	fmt.Println()
	fmt.Println("Performance Test Results:")
	fmt.Println("========================")

	rep := report.New(benchConfig.Size, benchConfig.Seed, benchConfig.Iterations)
	opts := harness.Options{
		Iterations: benchConfig.Iterations,
		ForceGC:    benchConfig.ForceGC,
	}

	for _, bench := range suite {
		if shouldSkip(bench.key) {
			fmt.Printf("%-25s: skipped\n", bench.name)
			continue
		}

		op := bench.op
		result := harness.Measure(bench.name, opts, func() { op(people) })
		rep.Append(result)
		report.WriteSummaryLine(os.Stdout, result)
	}

	return exportReport(rep)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(key string) bool {
	// Check if the query is in the skip list
	for _, skip := range benchConfig.Skip {
		if strings.TrimSpace(skip) == key {
			return true
		}
	}
	return false
}

// exportReport writes the report to every export target the configuration
// names. Targets are independent; the first failure aborts.
func exportReport(rep *report.Report) error {
	if path := benchConfig.CSVPath; path != "" {
		slog.Info("exporting results", "format", "csv", "path", path)
		if err := report.WriteCSV(path, rep); err != nil {
			return fmt.Errorf("failed to export results to CSV: %w", err)
		}
	}

	if path := benchConfig.JSONPath; path != "" {
		slog.Info("exporting results", "format", "json", "path", path)
		if err := report.WriteJSON(path, rep); err != nil {
			return fmt.Errorf("failed to export results to JSON: %w", err)
		}
	}

	if path := benchConfig.MetricsPath; path != "" {
		slog.Info("exporting results", "format", "prometheus", "path", path)
		if err := report.WriteMetricsFile(path, rep); err != nil {
			return fmt.Errorf("failed to export metrics: %w", err)
		}
	}

	if path := benchConfig.DBPath; path != "" {
		slog.Info("saving results", "db", path)
		store, err := report.NewStore(path)
		if err != nil {
			return fmt.Errorf("failed to open results database: %w", err)
		}
		defer store.Close()

		if err := store.SaveReport(context.Background(), rep); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
	}

	return nil
}
