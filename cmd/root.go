package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colbench/colbench/cmd/bench"
	"github.com/colbench/colbench/lib/logging"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "colbench",
		Short: "in-memory collection-query benchmark suite",
		Long: fmt.Sprintf(`colbench (v%s)

Benchmarks filter, group, aggregate, sort and projection queries over a
synthetic in-memory dataset and reports per-query timing statistics.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of colbench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("colbench v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(logging.Setup)

	// Add Commands
	RootCmd.AddCommand(bench.RunCmd)
	RootCmd.AddCommand(bench.HistoryCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
