// Package report renders and exports benchmark results.
//
// A Report bundles one suite run: a generated run ID, the runtime/platform
// identification, the generation parameters and the per-query harness
// results. The package writes reports in several forms:
//
//   - stdout summary lines (the program's primary output)
//   - CSV rows for spreadsheet processing
//   - a JSON document with the raw samples included
//   - Prometheus text exposition for scraping pipelines
//   - a SQLite results database for keeping history across runs
//
// All file exports are optional and independent; the stdout summary is
// always produced by the bench command itself.
package report
