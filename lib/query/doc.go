// Package query implements the five collection-query operations measured by
// the benchmark suite: a filtered per-department aggregation, a composite-key
// group-by, a string-heavy projection, a nested per-department analysis and
// a time-windowed projection with filter.
//
// All operations take the person collection read-only and return a freshly
// allocated result slice; repeated invocations on the same input produce
// identical results. Operations that depend on the current time capture a
// single "now" snapshot per call and come with an ...At variant that accepts
// the snapshot explicitly, so tests can run against fixed timestamps.
//
// Grouping preserves encounter order of keys. Sorts that allow ties are
// stable, so tied groups keep their encounter order in the result.
package query
