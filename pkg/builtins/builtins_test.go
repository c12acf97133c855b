package builtins_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/jqls/pkg/builtins"
)

func TestNamesAreSortedAndNonEmpty(t *testing.T) {
	names := builtins.Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		assert.NotEmpty(t, name)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "test_known_builtin", input: "length", expected: true},
		{name: "test_known_builtin_keys", input: "keys", expected: true},
		{name: "test_unknown_name", input: "definitely_not_a_builtin", expected: false},
		{name: "test_empty_name", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, builtins.Is(tt.input))
		})
	}
}

func TestDoc(t *testing.T) {
	doc, ok := builtins.Doc("length")
	require.True(t, ok)
	assert.NotEmpty(t, doc)

	_, ok = builtins.Doc("definitely_not_a_builtin")
	assert.False(t, ok)
}
