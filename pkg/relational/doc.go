// Package relational provides generic filter, map, fold, grouping, sorting,
// deduplication and join helpers over small in-memory slices.
//
// Every helper returns a new slice or map and leaves its input untouched,
// except SortStableInPlace, which reorders the caller's slice.
package relational
