package compare

import (
	"fmt"

	"github.com/roach88/harcmp/internal/record"
)

// Comparator derives the pairing key and display name for one record.
// The key is a pure function of the record's normalized fields; it is used
// only for grouping and never persisted.
type Comparator interface {
	Key(rec record.TransactionRecord) string
	DisplayName(rec record.TransactionRecord) string
}

// ForVariant selects the comparator for a record variant. Dispatch is by
// tag, not type hierarchy.
func ForVariant(v record.Variant) Comparator {
	if v == record.VariantGraphQL {
		return graphqlComparator{}
	}
	return restComparator{}
}

// DisplayName returns the display name of a record under its own variant's
// comparator.
func DisplayName(rec record.TransactionRecord) string {
	return ForVariant(rec.Variant).DisplayName(rec)
}

// restComparator pairs REST records by method + endpoint + parameter
// signature (query string plus canonical JSON body).
type restComparator struct{}

func (restComparator) Key(rec record.TransactionRecord) string {
	return fmt.Sprintf("%s %s | p=%s", rec.Method, rec.Endpoint, rec.REST.ParameterSignature)
}

func (restComparator) DisplayName(rec record.TransactionRecord) string {
	return fmt.Sprintf("%s %s", rec.Method, rec.Endpoint)
}

// graphqlComparator pairs GraphQL records by method + endpoint + operation.
// A named operation pairs by its name alone, so an edited selection set
// surfaces as a query diff on a matched pair instead of an unrelated
// add/remove. Anonymous operations have nothing else to pair on and fall
// back to the whitespace-normalized query text.
type graphqlComparator struct{}

func (graphqlComparator) Key(rec record.TransactionRecord) string {
	if op := rec.GraphQL.OperationName; op != "" {
		return fmt.Sprintf("%s %s | op=%s", rec.Method, rec.Endpoint, op)
	}
	return fmt.Sprintf("%s %s | q=%s", rec.Method, rec.Endpoint, rec.GraphQL.NormalizedQuery)
}

// DisplayName shows the operation name in brackets when one exists, else
// falls back to the REST-style name.
func (graphqlComparator) DisplayName(rec record.TransactionRecord) string {
	if op := rec.GraphQL.OperationName; op != "" {
		return fmt.Sprintf("[%s] %s %s", op, rec.Method, rec.Endpoint)
	}
	return fmt.Sprintf("%s %s", rec.Method, rec.Endpoint)
}
