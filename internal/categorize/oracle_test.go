package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResults_PlainArray(t *testing.T) {
	raw := `[{"id":0,"cleanName":"Zepto","category":"Groceries","reason":"Recognized merchant"}]`
	results, err := ParseResults(raw, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, Result{ID: 0, CleanName: "Zepto", Category: "Groceries", Reason: "Recognized merchant"}, results[0])
}

func TestParseResults_MarkdownFences(t *testing.T) {
	raw := "```json\n[{\"id\":1,\"cleanName\":\"Swiggy\",\"category\":\"Food\",\"reason\":\"\"}]\n```"
	results, err := ParseResults(raw, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Swiggy", results[0].CleanName)
}

func TestParseResults_LeadingChatter(t *testing.T) {
	raw := "Sure, here are the results:\n[{\"id\":0,\"cleanName\":\"Zepto\",\"category\":\"Groceries\"}]\nHope that helps!"
	results, err := ParseResults(raw, 5)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestParseResults_UnparseablePayload(t *testing.T) {
	_, err := ParseResults("I could not process that.", 5)
	assert.Error(t, err)
}

func TestParseResults_SchemaViolationsDropped(t *testing.T) {
	raw := `[
		{"id":"zero","cleanName":"Bad","category":"Other"},
		{"id":0,"cleanName":"","category":"Other"},
		{"id":0,"cleanName":"Missing category"},
		{"id":1,"cleanName":"Good","category":"Food"},
		"not an object"
	]`
	results, err := ParseResults(raw, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
}

func TestParseResults_OutOfRangeIDDropped(t *testing.T) {
	raw := `[{"id":7,"cleanName":"X","category":"Other"},{"id":-1,"cleanName":"Y","category":"Other"}]`
	results, err := ParseResults(raw, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParseResults_NonIntegerIDDropped(t *testing.T) {
	raw := `[{"id":1.5,"cleanName":"X","category":"Other"}]`
	results, err := ParseResults(raw, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCleanModelJSON_KeepsArraySlice(t *testing.T) {
	assert.Equal(t, `[1]`, cleanModelJSON("junk before [1] junk after"))
}
