package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantNormalized string
		wantHost       string
		wantPath       string
	}{
		{
			name:           "lowercases host",
			raw:            "https://API.Example.COM/users",
			wantNormalized: "https://api.example.com/users",
			wantHost:       "api.example.com",
			wantPath:       "/users",
		},
		{
			name:           "empty path defaults to slash",
			raw:            "https://example.com",
			wantNormalized: "https://example.com/",
			wantHost:       "example.com",
			wantPath:       "/",
		},
		{
			name:           "strips query and fragment",
			raw:            "https://example.com/search?q=1#top",
			wantNormalized: "https://example.com/search",
			wantHost:       "example.com",
			wantPath:       "/search",
		},
		{
			name:           "keeps port",
			raw:            "http://Example.com:8080/x",
			wantNormalized: "http://example.com:8080/x",
			wantHost:       "example.com:8080",
			wantPath:       "/x",
		},
		{
			name:           "unparsable falls back to raw",
			raw:            "http://bad\x7f url",
			wantNormalized: "http://bad\x7f url",
			wantHost:       "",
			wantPath:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, host, path := NormalizeURL(tt.raw)
			assert.Equal(t, tt.wantNormalized, normalized)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestNormalizeURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://Example.com/Users",
		"https://example.com",
		"example.com/no-scheme",
		"/relative/path?x=1",
		"http://bad\x7f url",
		"",
		"mailto:someone@example.com",
	}
	for _, u := range inputs {
		once, _, _ := NormalizeURL(u)
		twice, _, _ := NormalizeURL(once)
		assert.Equal(t, once, twice, "NormalizeURL must be idempotent for %q", u)
	}
}

func TestFoldHeadersLastValueWins(t *testing.T) {
	headers := []Header{
		{Name: "X-Token", Value: "first"},
		{Name: "Content-Type", Value: "application/json"},
		{Name: "x-token", Value: "second"},
		{Name: "X-TOKEN", Value: "third"},
		{Name: "", Value: "dropped"},
	}

	m := FoldHeaders(headers)

	assert.Equal(t, "third", m["x-token"], "last occurrence wins across case variants")
	assert.Equal(t, "application/json", m["content-type"])
	assert.Len(t, m, 2, "empty names are dropped")
}

func TestFoldHeadersNilInput(t *testing.T) {
	m := FoldHeaders(nil)
	require.NotNil(t, m)
	assert.Empty(t, m)
}

func TestNormalizeQueryWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t,
		NormalizeQuery(" query A {  x } "),
		NormalizeQuery("query A{x}"),
	)
	assert.Equal(t, "queryA{x}", NormalizeQuery("query\tA\n{\r\n  x\n}"))
	assert.Equal(t, "", NormalizeQuery("  \n\t "))
}

func TestNormalizeClassifiesGraphQLByMimeType(t *testing.T) {
	rec := Normalize(RawEntry{
		Method:          "POST",
		URL:             "https://api.example.com/graphql",
		RequestMimeType: "application/graphql",
		RequestBody:     "query { viewer { id } }",
	})
	assert.Equal(t, VariantGraphQL, rec.Variant)
}

func TestNormalizeClassifiesGraphQLByBodyShape(t *testing.T) {
	rec := Normalize(RawEntry{
		Method:          "POST",
		URL:             "https://api.example.com/api",
		RequestMimeType: "application/json",
		RequestBody:     `{"operationName":"GetUser","query":"query GetUser { user { id } }","variables":{"id":7}}`,
	})

	require.Equal(t, VariantGraphQL, rec.Variant)
	assert.Equal(t, "GetUser", rec.GraphQL.OperationName)
	assert.Equal(t, "query GetUser { user { id } }", rec.GraphQL.RawQuery)
	assert.Equal(t, "queryGetUser{user{id}}", rec.GraphQL.NormalizedQuery)
	assert.NotNil(t, rec.GraphQL.Variables)
}

func TestNormalizeMalformedBodyIsREST(t *testing.T) {
	rec := Normalize(RawEntry{
		Method:          "POST",
		URL:             "https://api.example.com/api",
		RequestMimeType: "application/json",
		RequestBody:     `{"query": truncated`,
	})
	assert.Equal(t, VariantREST, rec.Variant, "malformed JSON is not GraphQL, not an error")
}

func TestNormalizeJSONArrayBodyIsREST(t *testing.T) {
	rec := Normalize(RawEntry{
		Method:          "POST",
		URL:             "https://api.example.com/batch",
		RequestMimeType: "application/json",
		RequestBody:     `[{"query":"not graphql"}]`,
	})
	assert.Equal(t, VariantREST, rec.Variant, "only JSON objects can be GraphQL")
}

func TestNormalizeGraphQLEmptyBody(t *testing.T) {
	rec := Normalize(RawEntry{
		Method:          "POST",
		URL:             "https://api.example.com/gql",
		RequestMimeType: "application/graphql",
	})

	require.Equal(t, VariantGraphQL, rec.Variant)
	assert.Empty(t, rec.GraphQL.OperationName)
	assert.Empty(t, rec.GraphQL.RawQuery)
	assert.Empty(t, rec.GraphQL.NormalizedQuery)
	assert.Nil(t, rec.GraphQL.Variables)
}

func TestParameterSignatureSortsQueryPairs(t *testing.T) {
	a := ParameterSignature("https://example.com/x?b=2&a=1", "", "")
	b := ParameterSignature("https://example.com/x?a=1&b=2", "", "")
	assert.Equal(t, a, b, "query pair order must not matter")
}

func TestParameterSignatureKeepsBlankValues(t *testing.T) {
	withBlank := ParameterSignature("https://example.com/x?a=&b=2", "", "")
	without := ParameterSignature("https://example.com/x?b=2", "", "")
	assert.NotEqual(t, withBlank, without)
}

func TestParameterSignatureCanonicalizesJSONBody(t *testing.T) {
	a := ParameterSignature("https://example.com/x", "application/json", `{"b": 2, "a": 1}`)
	b := ParameterSignature("https://example.com/x", "application/json; charset=utf-8", `{"a":1,"b":2}`)
	assert.Equal(t, a, b, "key order and whitespace must not matter for JSON bodies")
}

func TestParameterSignatureInvalidJSONFallsBackToRawText(t *testing.T) {
	sig := ParameterSignature("https://example.com/x", "application/json", "not json at all")
	assert.Contains(t, sig, "not json at all")
}

func TestParameterSignatureIgnoresNonJSONBody(t *testing.T) {
	a := ParameterSignature("https://example.com/x", "text/plain", "some payload")
	b := ParameterSignature("https://example.com/x", "text/plain", "other payload")
	assert.Equal(t, a, b, "non-JSON bodies do not contribute to the signature")
}

func TestNormalizeDeterministic(t *testing.T) {
	entry := RawEntry{
		Method:          "POST",
		URL:             "https://API.example.com/items?z=1&a=2",
		Status:          201,
		DurationMs:      42.5,
		RequestHeaders:  []Header{{Name: "Accept", Value: "*/*"}},
		ResponseHeaders: []Header{{Name: "Content-Length", Value: "10"}},
		RequestMimeType: "application/json",
		RequestBody:     `{"k":[3,2,1]}`,
		StartedAt:       "2026-08-25T10:00:00Z",
	}

	r1 := Normalize(entry)
	r2 := Normalize(entry)
	assert.Equal(t, r1, r2, "normalization must be deterministic")
	assert.Equal(t, "https://api.example.com/items", r1.NormalizedURL)
	assert.Equal(t, "api.example.com", r1.Domain)
	assert.Equal(t, "/items", r1.Endpoint)
}
