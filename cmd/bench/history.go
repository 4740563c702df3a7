package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colbench/colbench/cmd/util"
	"github.com/colbench/colbench/lib/report"
)

var (
	// HistoryCmd lists past suite runs from the results database
	HistoryCmd = &cobra.Command{
		Use:   "history",
		Short: "List benchmark results stored in a results database",
		RunE:  runHistory,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return util.BindCommandFlags(cmd)
		},
	}
)

func init() {
	key := "db"
	HistoryCmd.Flags().String(key, "", util.WrapString("Path to the SQLite results database"))
	_ = HistoryCmd.MarkFlagRequired(key)
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := report.NewStore(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("failed to open results database: %w", err)
	}
	defer store.Close()

	reports, err := store.ListReports(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}

	if len(reports) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	for _, rep := range reports {
		fmt.Printf("%s  run %s\n", rep.StartedAt.Format(time.RFC3339), rep.RunID)
		fmt.Printf("  %s %s/%s, %d CPUs, size=%d seed=%d iterations=%d\n",
			rep.GoVersion, rep.OS, rep.Arch, rep.NumCPU, rep.DatasetSize, rep.Seed, rep.Iterations)
		for _, result := range rep.Results {
			fmt.Printf("  %-25s: Avg: %.1fms, Min: %dms, Max: %dms\n",
				result.Name, result.AvgMs, int64(result.MinMs), int64(result.MaxMs))
		}
		fmt.Println()
	}

	return nil
}
