package record

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"unicode"
)

// Normalize converts one raw entry into a TransactionRecord. It never fails:
// every DataQuality problem (malformed URL, unparsable body, missing headers)
// degrades to a documented fallback so that one bad entry cannot abort its
// siblings.
func Normalize(e RawEntry) TransactionRecord {
	normalized, host, path := NormalizeURL(e.URL)

	rec := TransactionRecord{
		Method:          e.Method,
		URL:             e.URL,
		NormalizedURL:   normalized,
		Domain:          host,
		Endpoint:        path,
		Status:          e.Status,
		DurationMs:      e.DurationMs,
		StartedAt:       e.StartedAt,
		RequestHeaders:  FoldHeaders(e.RequestHeaders),
		ResponseHeaders: FoldHeaders(e.ResponseHeaders),
		RequestBody:     e.RequestBody,
		ResponseBody:    e.ResponseBody,
	}

	if isGraphQL(e.RequestMimeType, e.RequestBody) {
		rec.Variant = VariantGraphQL
		rec.GraphQL = graphqlPayload(e.RequestBody)
	} else {
		rec.Variant = VariantREST
		rec.REST = RESTPayload{
			ParameterSignature: ParameterSignature(e.URL, e.RequestMimeType, e.RequestBody),
		}
	}
	return rec
}

// NormalizeAll normalizes a capture's entries in order.
func NormalizeAll(entries []RawEntry) []TransactionRecord {
	recs := make([]TransactionRecord, len(entries))
	for i, e := range entries {
		recs[i] = Normalize(e)
	}
	return recs
}

// NormalizeURL parses a raw URL into its normalized form plus host and path.
// The host is lowercased and an empty path defaults to "/". A string that
// cannot be parsed is returned verbatim with empty host and path - callers
// always get a usable value.
//
// The function is idempotent: NormalizeURL(NormalizeURL(u)) == NormalizeURL(u).
func NormalizeURL(raw string) (normalized, host, path string) {
	u, err := url.Parse(raw)
	if err != nil {
		return raw, "", ""
	}
	host = strings.ToLower(u.Host)
	path = u.Path
	if path == "" {
		path = "/"
	}
	return u.Scheme + "://" + host + path, host, path
}

// FoldHeaders converts a captured header list into a lookup map. Names are
// lowercased; duplicate names resolve to the last occurrence (CP-3). Entries
// with empty names are dropped. Never returns nil.
func FoldHeaders(headers []Header) map[string]string {
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		name := strings.ToLower(h.Name)
		if name == "" {
			continue
		}
		out[name] = h.Value
	}
	return out
}

// NormalizeQuery strips all whitespace from a GraphQL query for structural
// comparison. Two queries differing only in formatting normalize identically.
func NormalizeQuery(q string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, q)
}

// isGraphQL classifies an entry as GraphQL when its request mime type
// mentions graphql, or its body parses as a JSON object carrying a query or
// operationName key. A malformed body is "not GraphQL", never an error.
func isGraphQL(mimeType, body string) bool {
	if strings.Contains(strings.ToLower(mimeType), "graphql") {
		return true
	}
	if body == "" {
		return false
	}
	v, err := decodeJSON(body)
	if err != nil {
		return false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, hasQuery := obj["query"]
	_, hasOp := obj["operationName"]
	return hasQuery || hasOp
}

// graphqlPayload extracts operationName, query and variables from a GraphQL
// request body. An absent or unparsable body yields all-empty fields.
func graphqlPayload(body string) GraphQLPayload {
	var p GraphQLPayload
	if body == "" {
		return p
	}
	v, err := decodeJSON(body)
	if err != nil {
		return p
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return p
	}
	if op, ok := obj["operationName"].(string); ok {
		p.OperationName = op
	}
	if q, ok := obj["query"].(string); ok {
		p.RawQuery = q
		p.NormalizedQuery = NormalizeQuery(q)
	}
	if vars, ok := obj["variables"]; ok {
		p.Variables = vars
	}
	return p
}

// ParameterSignature builds the canonical pairing signature for a REST
// request: the sorted query-string pairs plus, when the declared content
// type is in the application/json family, the canonicalized JSON body. An
// invalid JSON body contributes its raw text verbatim (never an error).
func ParameterSignature(rawURL, mimeType, body string) string {
	jsonSig := ""
	if strings.HasPrefix(strings.ToLower(mimeType), "application/json") && body != "" {
		jsonSig = CanonicalizeJSONText(body)
	}
	// encoding/json sorts map keys, so the envelope itself is canonical.
	sig, _ := json.Marshal(map[string]string{
		"query": queryPairsSignature(rawURL),
		"json":  jsonSig,
	})
	return string(sig)
}

// queryPairsSignature serializes the query-string pairs of a URL sorted by
// key then value. Blank values are kept. Unparsable URLs or query strings
// yield the empty signature.
func queryPairsSignature(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return ""
	}
	pairs := make([][2]string, 0, len(values))
	for k, vs := range values {
		for _, v := range vs {
			pairs = append(pairs, [2]string{k, v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	out, _ := json.Marshal(pairs)
	return string(out)
}
