// Package record normalizes raw captured HTTP transactions into immutable,
// comparable TransactionRecord values.
//
// Normalization is total: malformed URLs, unparsable JSON bodies, and missing
// headers degrade to documented fallbacks (raw string, empty signature, empty
// GraphQL fields) rather than errors. One bad entry never aborts processing
// of its siblings.
//
// # Critical Patterns
//
// CP-1: Records Are Immutable
//   - A TransactionRecord is built once by Normalize and never mutated
//   - Downstream pairing and diffing treat records as pure values
//
// CP-2: Deterministic Signatures
//   - REST parameter signatures and GraphQL canonical forms use key-sorted,
//     whitespace-free JSON serialization
//   - The same entry always normalizes to the same record
//
// CP-3: Last Value Wins
//   - Duplicate header names resolve to the last occurrence
//   - This is an explicit contract, not a side effect of map construction
package record
