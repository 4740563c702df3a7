// Package cmd implements the command-line interface for the colbench
// benchmark suite. It provides a flat command structure around running the
// suite and inspecting stored results.
//
// The package is organized into subpackages:
//
//   - bench: Commands for running the benchmark suite and listing past runs
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See colbench -help for a list of all commands.
package cmd
