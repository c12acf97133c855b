package completion

import (
	"fmt"
	"strings"

	"github.com/walteh/jqls/pkg/builtins"
	"github.com/walteh/jqls/pkg/parser"
)

// Sort-text prefixes encode the fixed offer order: value parameters before
// filter parameters before user functions before built-ins.
const (
	sortValueArg  = "0_"
	sortFilterArg = "1_"
	sortFunction  = "2_"
	sortBuiltin   = "3_"
)

// ParameterProvider offers the parameters of the enclosing definition
type ParameterProvider struct{}

// GetCompletions returns parameter completions for the enclosing definition.
// Value parameters keep their sigil in the label; when the cursor follows a
// typed sigil, insertion and filter text omit it.
func (p *ParameterProvider) GetCompletions(cc *CompletionContext, enclosing *parser.FunctionDefinition) []CompletionItem {
	if enclosing == nil {
		return nil
	}

	completions := make([]CompletionItem, 0, len(enclosing.ValueArgs)+len(enclosing.FilterArgs))

	for _, arg := range enclosing.ValueArgs {
		bare := strings.TrimPrefix(arg, "$")
		item := CompletionItem{
			Label:         arg,
			Kind:          KindVariable,
			Detail:        "value parameter",
			Documentation: "Parameter of " + enclosing.Name,
			InsertText:    arg,
			SortText:      sortValueArg + bare,
		}
		if cc.AfterSigil {
			item.InsertText = bare
			item.FilterText = bare
		}
		completions = append(completions, item)
	}

	for _, arg := range enclosing.FilterArgs {
		completions = append(completions, CompletionItem{
			Label:         arg,
			Kind:          KindParameter,
			Detail:        "filter parameter",
			Documentation: "Parameter of " + enclosing.Name,
			InsertText:    arg,
			SortText:      sortFilterArg + arg,
		})
	}

	return completions
}

// FunctionProvider offers every recovered function other than the enclosing
// definition itself
type FunctionProvider struct{}

// GetCompletions returns user-function completions. Self-exclusion is by name
// equality with the enclosing definition, so every record sharing that name
// is excluded.
func (p *FunctionProvider) GetCompletions(defs []parser.FunctionDefinition, enclosing *parser.FunctionDefinition) []CompletionItem {
	completions := make([]CompletionItem, 0, len(defs))

	for i := range defs {
		def := &defs[i]
		if enclosing != nil && def.Name == enclosing.Name {
			continue
		}

		item := CompletionItem{
			Label:         def.Name,
			Kind:          KindFunction,
			Detail:        def.Signature(),
			Documentation: "User-defined function",
			InsertText:    def.Name,
			SortText:      sortFunction + def.Name,
		}
		if len(def.ValueArgs)+len(def.FilterArgs) > 0 {
			item.InsertText = snippetFor(def)
			item.Snippet = true
		}
		completions = append(completions, item)
	}

	return completions
}

// snippetFor builds a placeholder template like "foo(${1:$a}; ${2:b})"
func snippetFor(def *parser.FunctionDefinition) string {
	var args []string
	n := 1
	for _, arg := range def.ValueArgs {
		args = append(args, fmt.Sprintf("${%d:%s}", n, arg))
		n++
	}
	for _, arg := range def.FilterArgs {
		args = append(args, fmt.Sprintf("${%d:%s}", n, arg))
		n++
	}
	return def.Name + "(" + strings.Join(args, "; ") + ")"
}

// BuiltinProvider offers every built-in function, unconditionally: shadowing
// only affects classification, never the offer list
type BuiltinProvider struct{}

// GetCompletions returns completions for all built-in functions
func (p *BuiltinProvider) GetCompletions() []CompletionItem {
	names := builtins.Names()
	completions := make([]CompletionItem, 0, len(names))

	for _, name := range names {
		item := CompletionItem{
			Label:      name,
			Kind:       KindFunction,
			Detail:     "builtin",
			InsertText: name,
			SortText:   sortBuiltin + name,
		}
		if doc, ok := builtins.Doc(name); ok {
			item.Documentation = doc
		}
		completions = append(completions, item)
	}

	return completions
}
