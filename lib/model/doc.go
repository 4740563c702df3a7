// Package model defines the entity and result types shared by the data
// generator, the query operations and the reporting layer.
//
// The central type is Person, the synthetic input record. All other types
// are projections or per-group statistics derived from a Person collection
// by one of the query operations. None of the types carry behavior beyond
// plain data access; values are created once and never mutated afterwards,
// which is what allows the timing harness to re-run a query on the same
// input and expect identical results.
package model
