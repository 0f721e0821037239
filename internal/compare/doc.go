// Package compare pairs normalized transaction records across two captures
// and computes structured differences between matched pairs.
//
// The pipeline is pure: Compare performs no I/O, no logging, and keeps no
// state between calls. Concurrent comparisons of different capture pairs
// need no coordination.
//
// # Critical Patterns
//
// CP-1: Positional Alignment
//   - Records sharing a pairing key align by capture-order position
//   - Excess entries on the longer side become added/removed, never
//     one-to-many matches
//   - Deterministic and stable under re-runs
//
// CP-2: Variant Isolation
//   - REST and GraphQL records never pair with each other
//   - Each variant supplies its own pairing key and display name through
//     the Comparator interface
//
// CP-3: Deterministic Output Order
//   - Key groups are visited in first-seen capture order, baseline side
//     first, so results are identical across runs
package compare
