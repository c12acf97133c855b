// Package completion builds completion items for a cursor position in
// filter-language source. Definitions are recovered from scratch on every
// request; nothing is cached across requests.
package completion

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/jqls/pkg/parser"
)

// CompletionItem represents a single completion suggestion
type CompletionItem struct {
	Label         string `json:"label"`
	Kind          string `json:"kind"`
	Detail        string `json:"detail,omitempty"`
	Documentation string `json:"documentation,omitempty"`

	// InsertText is the text inserted when the item is accepted. When
	// Snippet is set it uses placeholder syntax (${1:arg}).
	InsertText string `json:"insertText,omitempty"`

	// FilterText overrides Label for matching against typed text
	FilterText string `json:"filterText,omitempty"`

	// SortText orders items; lower sorts first
	SortText string `json:"sortText,omitempty"`

	Snippet bool `json:"snippet,omitempty"`
}

// Item kinds, loosely following the LSP completion item kind names.
const (
	KindVariable  = "variable"
	KindParameter = "parameter"
	KindFunction  = "function"
)

// GetCompletions returns completion items for the given cursor position, in
// offer order: the enclosing definition's value parameters first, then its
// filter parameters, then every other recovered function, then all built-ins.
// charBeforeCursor is the character immediately preceding the cursor (the
// trigger character when the host supplies one); when it is the $ sigil,
// value-parameter insertion text omits the sigil since it is already typed.
func GetCompletions(ctx context.Context, content []byte, line, character int, charBeforeCursor string) ([]CompletionItem, error) {
	defs := parser.ParseDefinitions(ctx, content)
	enclosing := parser.EnclosingDefinition(defs, line)

	cc := NewCompletionContext(string(content), line, character, charBeforeCursor)

	items := make([]CompletionItem, 0)
	items = append(items, (&ParameterProvider{}).GetCompletions(cc, enclosing)...)
	items = append(items, (&FunctionProvider{}).GetCompletions(defs, enclosing)...)
	items = append(items, (&BuiltinProvider{}).GetCompletions()...)

	zerolog.Ctx(ctx).Trace().
		Int("line", line).
		Int("character", character).
		Bool("after_sigil", cc.AfterSigil).
		Int("items", len(items)).
		Msg("built completions")

	return items, nil
}
