package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"zebra": json.Number("1"),
		"alpha": "x",
		"mid":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","mid":true,"zebra":1}`, string(out))
}

func TestMarshalCanonicalNested(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"b": map[string]any{"y": json.Number("2"), "x": json.Number("1")},
		"a": []any{json.Number("3"), "s", nil},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[3,"s",null],"b":{"x":1,"y":2}}`, string(out))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{"q": "a<b && c>d"})
	require.NoError(t, err)
	assert.Equal(t, `{"q":"a<b && c>d"}`, string(out))
}

func TestCanonicalizeJSONTextEquivalentDocuments(t *testing.T) {
	a := CanonicalizeJSONText(`{ "b" : 2,
		"a" : [1, 2] }`)
	b := CanonicalizeJSONText(`{"a":[1,2],"b":2}`)
	assert.Equal(t, a, b)
	assert.Equal(t, `{"a":[1,2],"b":2}`, a)
}

func TestCanonicalizeJSONTextPreservesNumberRepresentation(t *testing.T) {
	assert.Equal(t, `{"n":1.50}`, CanonicalizeJSONText(`{"n": 1.50}`))
	assert.Equal(t, `{"n":1e9}`, CanonicalizeJSONText(`{"n": 1e9}`))
}

func TestCanonicalizeJSONTextInvalidInputVerbatim(t *testing.T) {
	assert.Equal(t, "not json", CanonicalizeJSONText("not json"))
	assert.Equal(t, `{"a":1} trailing`, CanonicalizeJSONText(`{"a":1} trailing`))
	assert.Equal(t, "", CanonicalizeJSONText(""))
}

func TestCanonicalizeValueNilIsEmpty(t *testing.T) {
	// Absent variables and explicit null must compare equal.
	assert.Equal(t, "", CanonicalizeValue(nil))
}

func TestCanonicalizeValueDeterministic(t *testing.T) {
	v := map[string]any{"id": json.Number("7"), "tags": []any{"a", "b"}}
	assert.Equal(t, CanonicalizeValue(v), CanonicalizeValue(v))
	assert.Equal(t, `{"id":7,"tags":["a","b"]}`, CanonicalizeValue(v))
}
