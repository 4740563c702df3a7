// Package dataset produces the synthetic person collection the benchmark
// queries run against.
//
// Generation is driven by a seeded math/rand source, so the same (count,
// seed) pair always yields identical attribute draws across runs (hire
// dates are offsets from the "now" passed to GenerateAt). Names and
// departments come from small fixed sets cycled by position; age, salary and
// hire offset are drawn uniformly from fixed ranges. There is deliberately
// no configuration beyond count and seed.
package dataset
