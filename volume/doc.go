// Package volume loads Synchro UTDF volume exports and merges the AM
// and PM period tables into combined per-movement counts.
//
// A UTDF volume export carries several record kinds in one CSV; only
// RECORDNAME=="Volume" rows are counts. Intersections are identified by
// the INTID column, treated as an opaque string so it can later be
// matched byte-for-byte against the ATTOUT NODE_ID column.
//
// Counts that are blank or unparsable stay absent (Volume.Valid ==
// false) rather than becoming zero; the distinction survives the merge
// and controls how the combined cell renders downstream.
package volume
