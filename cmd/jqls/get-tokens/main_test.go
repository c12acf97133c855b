package get_tokens

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func() error) []byte {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()
	require.NoError(t, w.Close())
	require.NoError(t, runErr)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

func TestRunOutputsClassifiedTokensWithRanges(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "filters.jq", []byte("def foo($a; b):\n  $a + b\ndef bar:\n  foo(1;2)"), 0644))

	me := &Handler{filePath: "filters.jq", fs: fs}

	out := captureStdout(t, func() error {
		return me.Run(context.Background())
	})

	var tokens []tokenOutput
	require.NoError(t, json.Unmarshal(out, &tokens))
	require.NotEmpty(t, tokens)

	// the foo reference inside bar's body, with its full line/column range
	last := tokens[len(tokens)-1]
	assert.Equal(t, "foo", last.Text)
	assert.Equal(t, 36, last.Offset)
	assert.Equal(t, "function", last.Type)
	assert.Equal(t, "none", last.Modifier)
	assert.Equal(t, 3, last.Line)
	assert.Equal(t, 2, last.Character)
	assert.Equal(t, 3, last.EndLine)
	assert.Equal(t, 5, last.EndCharacter)
}
