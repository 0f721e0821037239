package compare

import (
	"sort"

	"github.com/roach88/harcmp/internal/record"
)

// DefaultTimeThresholdMs is the duration delta, in milliseconds, above which
// a pair is flagged as time-changed when no explicit threshold is set.
const DefaultTimeThresholdMs = 100

// Options configures a comparison. The zero value uses defaults.
type Options struct {
	// TimeThresholdMs flags a pair as time-changed when the absolute
	// duration delta exceeds it. Zero or negative means
	// DefaultTimeThresholdMs.
	TimeThresholdMs float64
}

func (o Options) timeThreshold() float64 {
	if o.TimeThresholdMs <= 0 {
		return DefaultTimeThresholdMs
	}
	return o.TimeThresholdMs
}

// ChangeRow is one matched pair plus its diff and derived badges - the unit
// consumed by the reporting layer. Rows exist for every matched pair; an
// identical pair is a valid row with AnyChanged=false.
type ChangeRow struct {
	Baseline  record.TransactionRecord
	Candidate record.TransactionRecord

	// Name is the candidate-side display name (bracketed operation name for
	// GraphQL records).
	Name   string
	Domain string

	Diff   DiffResult
	Badges Badges
}

// Result is the full outcome of one comparison.
type Result struct {
	Added   []record.TransactionRecord
	Removed []record.TransactionRecord
	Changed []ChangeRow

	// Domains is the sorted set of domains seen across matched pairs.
	Domains []string
}

// Records compares two sides of already-normalized records. Pure and
// stateless: calls never observe each other, so whole comparisons may run
// concurrently without coordination.
func Records(baseline, candidate []record.TransactionRecord, opts Options) Result {
	added, removed, pairs := pairByVariant(baseline, candidate)

	res := Result{Added: added, Removed: removed}

	domains := make(map[string]struct{})
	for _, p := range pairs {
		domain := p.Candidate.Domain
		if domain == "" {
			domain = p.Baseline.Domain
		}
		domains[domain] = struct{}{}

		d := Diff(p.Baseline, p.Candidate, opts)
		res.Changed = append(res.Changed, ChangeRow{
			Baseline:  p.Baseline,
			Candidate: p.Candidate,
			Name:      DisplayName(p.Candidate),
			Domain:    domain,
			Diff:      d,
			Badges:    Classify(d),
		})
	}

	res.Domains = make([]string, 0, len(domains))
	for d := range domains {
		res.Domains = append(res.Domains, d)
	}
	sort.Strings(res.Domains)
	return res
}

// Entries is the raw-entry entry point: both sides are normalized, then
// compared. Normalization is total, so this cannot fail; a structurally
// unreadable capture must be rejected by the loader before this point.
func Entries(baseline, candidate []record.RawEntry, opts Options) Result {
	return Records(record.NormalizeAll(baseline), record.NormalizeAll(candidate), opts)
}
