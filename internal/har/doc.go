// Package har loads HAR 1.2 capture files into raw entries for
// normalization.
//
// Only the fields the comparison pipeline consumes are modeled. A capture
// that cannot be read at all (unreadable file, invalid JSON, missing
// log.entries) fails with *FormatError - the single fatal condition of a
// comparison. Per-entry oddities (missing bodies, absent status) degrade to
// zero values and never abort the load.
package har
