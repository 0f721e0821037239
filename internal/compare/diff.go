package compare

import (
	"math"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/roach88/harcmp/internal/record"
)

// ValueChange records one header value transition.
type ValueChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// HeaderDelta is the structured difference between two header maps.
type HeaderDelta struct {
	Added   map[string]string      `json:"added"`
	Removed map[string]string      `json:"removed"`
	Changed map[string]ValueChange `json:"changed"`
}

// Empty reports whether the delta carries no differences.
func (d HeaderDelta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DictDiff compares two string maps: added = keys only in new, removed =
// keys only in old, changed = keys in both with different values.
//
// Symmetry holds by construction: DictDiff(x, y).Added == DictDiff(y, x).Removed
// and the changed key sets are identical with old/new swapped.
func DictDiff(old, new map[string]string) HeaderDelta {
	d := HeaderDelta{
		Added:   map[string]string{},
		Removed: map[string]string{},
		Changed: map[string]ValueChange{},
	}
	for k, nv := range new {
		ov, ok := old[k]
		switch {
		case !ok:
			d.Added[k] = nv
		case ov != nv:
			d.Changed[k] = ValueChange{Old: ov, New: nv}
		}
	}
	for k, ov := range old {
		if _, ok := new[k]; !ok {
			d.Removed[k] = ov
		}
	}
	return d
}

// DiffResult is the pure value produced by diffing one matched pair.
type DiffResult struct {
	RequestHeaders  HeaderDelta
	ResponseHeaders HeaderDelta

	StatusChanged bool
	TimeChanged   bool

	// GraphQL change flags compare canonicalized forms, independent of
	// whether a readable diff was produced.
	QueryChanged     bool
	VariablesChanged bool

	// Alignment spans for rendering. Nil for REST pairs or unchanged text.
	QueryDiff     []diffmatchpatch.Diff
	VariablesDiff []diffmatchpatch.Diff
}

// Diff computes the structured difference between a matched baseline and
// candidate record. Pure: no I/O and no dependency on prior calls.
func Diff(a, b record.TransactionRecord, opts Options) DiffResult {
	res := DiffResult{
		RequestHeaders:  DictDiff(a.RequestHeaders, b.RequestHeaders),
		ResponseHeaders: DictDiff(a.ResponseHeaders, b.ResponseHeaders),
		StatusChanged:   a.Status != b.Status,
		TimeChanged:     math.Abs(b.DurationMs-a.DurationMs) > opts.timeThreshold(),
	}

	if a.IsGraphQL() || b.IsGraphQL() {
		aq, bq := a.GraphQL.NormalizedQuery, b.GraphQL.NormalizedQuery
		res.QueryChanged = aq != bq
		if res.QueryChanged {
			res.QueryDiff = alignText(a.GraphQL.RawQuery, b.GraphQL.RawQuery)
		}

		av := record.CanonicalizeValue(a.GraphQL.Variables)
		bv := record.CanonicalizeValue(b.GraphQL.Variables)
		res.VariablesChanged = av != bv
		if res.VariablesChanged {
			res.VariablesDiff = alignText(av, bv)
		}
	}
	return res
}

// alignText produces LCS-style {equal, insert, delete} spans between two
// texts. Multiline inputs align line by line; single-line inputs align at
// character level with semantic cleanup to maximize equal runs.
func alignText(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	if strings.Contains(a, "\n") || strings.Contains(b, "\n") {
		ca, cb, lines := dmp.DiffLinesToChars(a, b)
		diffs := dmp.DiffMain(ca, cb, false)
		return dmp.DiffCharsToLines(diffs, lines)
	}
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCleanupSemantic(diffs)
}
