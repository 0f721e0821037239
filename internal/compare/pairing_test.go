package compare

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/harcmp/internal/record"
)

func TestPairRecordsPositionalAlignment(t *testing.T) {
	// N=2 baseline and M=3 candidate records share one key: exactly
	// min(N,M)=2 pairs and M-N=1 added, nothing matched twice.
	mk := func(status int) record.TransactionRecord {
		r := restRecord("GET", "https://example.com/poll")
		r.Status = status
		return r
	}
	baseline := []record.TransactionRecord{mk(200), mk(201)}
	candidate := []record.TransactionRecord{mk(210), mk(211), mk(212)}

	added, removed, pairs := pairRecords(baseline, candidate, restComparator{})

	require.Len(t, pairs, 2)
	require.Len(t, added, 1)
	assert.Empty(t, removed)

	// Alignment is by capture-order position.
	assert.Equal(t, 200, pairs[0].Baseline.Status)
	assert.Equal(t, 210, pairs[0].Candidate.Status)
	assert.Equal(t, 201, pairs[1].Baseline.Status)
	assert.Equal(t, 211, pairs[1].Candidate.Status)
	assert.Equal(t, 212, added[0].Status)
}

func TestPairRecordsExcessBaselineRemoved(t *testing.T) {
	mk := func() record.TransactionRecord { return restRecord("GET", "https://example.com/poll") }
	baseline := []record.TransactionRecord{mk(), mk(), mk()}
	candidate := []record.TransactionRecord{mk()}

	added, removed, pairs := pairRecords(baseline, candidate, restComparator{})

	assert.Len(t, pairs, 1)
	assert.Len(t, removed, 2)
	assert.Empty(t, added)
}

func TestPairRecordsDisjointKeys(t *testing.T) {
	baseline := []record.TransactionRecord{restRecord("GET", "https://example.com/old")}
	candidate := []record.TransactionRecord{restRecord("GET", "https://example.com/new")}

	added, removed, pairs := pairRecords(baseline, candidate, restComparator{})

	assert.Empty(t, pairs)
	require.Len(t, added, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, "/new", added[0].Endpoint)
	assert.Equal(t, "/old", removed[0].Endpoint)
}

func TestPairRecordsDeterministicOrder(t *testing.T) {
	var baseline, candidate []record.TransactionRecord
	for i := 0; i < 20; i++ {
		baseline = append(baseline, restRecord("GET", fmt.Sprintf("https://example.com/b/%d", i)))
		candidate = append(candidate, restRecord("GET", fmt.Sprintf("https://example.com/c/%d", i)))
	}

	added1, removed1, _ := pairRecords(baseline, candidate, restComparator{})
	added2, removed2, _ := pairRecords(baseline, candidate, restComparator{})

	assert.Equal(t, added1, added2, "output order must be stable across runs")
	assert.Equal(t, removed1, removed2)

	// Capture order is preserved within each side.
	for i, rec := range removed1 {
		assert.Equal(t, fmt.Sprintf("/b/%d", i), rec.Endpoint)
	}
	for i, rec := range added1 {
		assert.Equal(t, fmt.Sprintf("/c/%d", i), rec.Endpoint)
	}
}

func TestPairByVariantKeepsVariantsApart(t *testing.T) {
	// A REST and a GraphQL record on the same endpoint must never pair.
	rest := restRecord("POST", "https://api.example.com/graphql")
	gql := gqlRecord("GetUser", "query GetUser { user { id } }", "")

	added, removed, pairs := pairByVariant(
		[]record.TransactionRecord{rest},
		[]record.TransactionRecord{gql},
	)

	assert.Empty(t, pairs)
	assert.Len(t, added, 1)
	assert.Len(t, removed, 1)
}
