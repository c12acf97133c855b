package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "test_valid_resource",
			data: `[{"name": "length", "doc": "Length of a value"}, {"name": "keys"}]`,
		},
		{
			name:    "test_malformed_json",
			data:    `{"name": "length"`,
			wantErr: "failed to parse builtins resource",
		},
		{
			name:    "test_entry_with_no_name",
			data:    `[{"name": "length"}, {"doc": "orphaned doc"}]`,
			wantErr: "entry with no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, index, err := load([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, loaded, 2)
			assert.Contains(t, index, "length")
			assert.Contains(t, index, "keys")
			assert.Equal(t, "Length of a value", index["length"].Doc)
		})
	}
}

func TestEmbeddedResourceLoads(t *testing.T) {
	loaded, index, err := load(builtinsJSON)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded)
	assert.Contains(t, index, "length")
}
