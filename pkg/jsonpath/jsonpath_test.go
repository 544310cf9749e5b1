package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{
	"users": [
		{"name": "John", "age": 30},
		{"name": "Jane", "age": 25}
	],
	"total": 2,
	"meta": {"next": null}
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"Object field", "$.total", "2", false},
		{"Nested array field", "$.users[0].name", "John", false},
		{"Second element", "$.users[1].age", "25", false},
		{"Bracket notation", "$['total']", "2", false},
		{"Null value", "$.meta.next", "null", false},
		{"Missing path", "$.missing", "", true},
		{"Empty path", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(doc, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	_, err := Extract("", "$.total")
	require.Error(t, err)
}

func TestExtractMultiple(t *testing.T) {
	results, err := ExtractMultiple(doc, map[string]string{
		"first": "$.users[0].name",
		"count": "$.total",
	})
	require.NoError(t, err)

	assert.Equal(t, "John", results["first"])
	assert.Equal(t, "2", results["count"])
}

func TestExtractMultiple_PartialFailure(t *testing.T) {
	results, err := ExtractMultiple(doc, map[string]string{
		"first":   "$.users[0].name",
		"missing": "$.nope",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
	assert.Equal(t, "John", results["first"], "successful extractions are still returned")
}
