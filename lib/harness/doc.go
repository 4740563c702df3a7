// Package harness measures how long a query operation takes to execute.
//
// The protocol follows the usual warm-up-then-measure shape: one discarded
// run primes caches and the branch predictor, then a fixed number of timed
// runs are recorded at nanosecond precision and summarized as average,
// minimum and maximum wall-clock milliseconds. Sample statistics come from a
// go-metrics histogram backed by a uniform sample large enough to retain
// every run, so the reported numbers are exact, not approximations.
//
// The harness trusts the operation to be deterministic over its input; it
// performs no correctness checks of its own.
package harness
