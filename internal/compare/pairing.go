package compare

import "github.com/roach88/harcmp/internal/record"

// Pair is one baseline/candidate match produced by positional alignment.
type Pair struct {
	Baseline  record.TransactionRecord
	Candidate record.TransactionRecord
}

// keyGroups holds records grouped by pairing key, with key order preserved
// as first seen. Capture order is preserved within each group (CP-3).
type keyGroups struct {
	order  []string
	groups map[string][]record.TransactionRecord
}

func groupByKey(recs []record.TransactionRecord, cmp Comparator) keyGroups {
	g := keyGroups{groups: make(map[string][]record.TransactionRecord)}
	for _, rec := range recs {
		k := cmp.Key(rec)
		if _, seen := g.groups[k]; !seen {
			g.order = append(g.order, k)
		}
		g.groups[k] = append(g.groups[k], rec)
	}
	return g
}

// pairRecords aligns two sides of a single variant. Within each key group
// records match positionally by index; excess entries on the longer side are
// classified as removed (baseline) or added (candidate) and never matched to
// anything (CP-1).
func pairRecords(baseline, candidate []record.TransactionRecord, cmp Comparator) (added, removed []record.TransactionRecord, pairs []Pair) {
	ga := groupByKey(baseline, cmp)
	gb := groupByKey(candidate, cmp)

	// Baseline keys first, then candidate-only keys, each in first-seen
	// order, so output ordering is deterministic across runs.
	keys := make([]string, 0, len(ga.order)+len(gb.order))
	keys = append(keys, ga.order...)
	for _, k := range gb.order {
		if _, ok := ga.groups[k]; !ok {
			keys = append(keys, k)
		}
	}

	for _, k := range keys {
		la, lb := ga.groups[k], gb.groups[k]
		n := len(la)
		if len(lb) > n {
			n = len(lb)
		}
		for i := 0; i < n; i++ {
			switch {
			case i >= len(lb):
				removed = append(removed, la[i])
			case i >= len(la):
				added = append(added, lb[i])
			default:
				pairs = append(pairs, Pair{Baseline: la[i], Candidate: lb[i]})
			}
		}
	}
	return added, removed, pairs
}

// pairByVariant splits both sides by variant and aligns each variant
// independently (CP-2).
func pairByVariant(baseline, candidate []record.TransactionRecord) (added, removed []record.TransactionRecord, pairs []Pair) {
	split := func(recs []record.TransactionRecord) (rest, gql []record.TransactionRecord) {
		for _, r := range recs {
			if r.IsGraphQL() {
				gql = append(gql, r)
			} else {
				rest = append(rest, r)
			}
		}
		return rest, gql
	}

	aRest, aGQL := split(baseline)
	bRest, bGQL := split(candidate)

	for _, v := range []struct {
		a, b []record.TransactionRecord
		cmp  Comparator
	}{
		{aGQL, bGQL, graphqlComparator{}},
		{aRest, bRest, restComparator{}},
	} {
		ad, rm, ps := pairRecords(v.a, v.b, v.cmp)
		added = append(added, ad...)
		removed = append(removed, rm...)
		pairs = append(pairs, ps...)
	}
	return added, removed, pairs
}
