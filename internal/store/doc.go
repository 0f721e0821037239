// Package store provides SQLite-backed storage of normalized transaction
// records per comparison run.
//
// The store is a write-only sink from the comparison core's perspective: the
// pipeline persists both capture sides for later inspection but never reads
// anything back to compute a diff. The runs subcommand reads the tables for
// display only.
//
// Each run holds one capture side under a label ("baseline"/"candidate")
// with its source file path; records keep their capture position so stored
// order matches pairing order.
package store
