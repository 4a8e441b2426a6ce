// Package types defines the fixture records, query result shapes, the
// Fixtures context, configuration and standard error types for the
// prototypes query set.
//
// Records mirror the field names of the source datasets through their JSON
// tags. Keyed collections (bosses, constellations, weapons, dinosaurs,
// humans) are stored as ordered slices whose records carry their own key;
// joins resolve those keys through explicit lookups.
package types
