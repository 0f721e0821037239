package record

// Variant tags a record as plain REST or GraphQL-over-HTTP.
// Records of different variants never pair with each other.
type Variant string

const (
	VariantREST    Variant = "rest"
	VariantGraphQL Variant = "graphql"
)

// Header is one name/value pair as captured on the wire, order preserved.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RawEntry is one captured transaction before normalization. The capture
// loader produces these; the core makes no assumption about the file format
// they came from.
//
// Status and DurationMs use zero values for "absent" - captures routinely
// omit both for aborted or still-pending transactions.
type RawEntry struct {
	Method          string
	URL             string
	Status          int
	DurationMs      float64
	RequestHeaders  []Header
	ResponseHeaders []Header
	RequestBody     string
	RequestMimeType string
	ResponseBody    string
	StartedAt       string
}

// RESTPayload carries the variant-specific fields of a REST record.
type RESTPayload struct {
	// ParameterSignature is a canonical string combining the sorted
	// query-string pairs with a key-sorted serialization of the JSON body
	// (when the declared content type is application/json). Used for pairing.
	ParameterSignature string
}

// GraphQLPayload carries the variant-specific fields of a GraphQL record.
type GraphQLPayload struct {
	OperationName string

	// RawQuery is the query text exactly as captured.
	RawQuery string

	// NormalizedQuery is RawQuery with all whitespace removed. This is a
	// structural normalization, not a semantic one: two queries differing
	// only in formatting compare equal, but aliased or reordered selections
	// do not.
	NormalizedQuery string

	// Variables is the decoded variables value, nil when absent. Numbers are
	// json.Number so canonical serialization round-trips exactly.
	Variables any
}

// TransactionRecord is the normalized, comparable representation of one
// captured transaction. Built once by Normalize; never mutated afterwards.
type TransactionRecord struct {
	Variant Variant

	Method        string
	URL           string
	NormalizedURL string // scheme + lowercased host + path, default path "/"
	Domain        string
	Endpoint      string // path component

	Status     int
	DurationMs float64
	StartedAt  string // opaque timestamp string from the capture

	// Header maps use lowercased names; duplicate names resolved by
	// last-value-wins (CP-3).
	RequestHeaders  map[string]string
	ResponseHeaders map[string]string

	RequestBody  string
	ResponseBody string

	// Exactly one of these is meaningful, selected by Variant.
	REST    RESTPayload
	GraphQL GraphQLPayload
}

// IsGraphQL reports whether the record carries a GraphQL payload.
func (r TransactionRecord) IsGraphQL() bool {
	return r.Variant == VariantGraphQL
}
