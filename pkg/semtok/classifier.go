package semtok

import (
	"regexp"
	"strings"

	"github.com/walteh/jqls/pkg/builtins"
	"github.com/walteh/jqls/pkg/parser"
	"github.com/walteh/jqls/pkg/position"
)

// identRegex matches one identifier token: letters, digits and underscore,
// not starting with a digit. The $ sigil is not part of the token.
var identRegex = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// classifier holds the per-request derived state for one classification scan
type classifier struct {
	// text is the original source text
	text string

	// defs are the definitions recovered for this request
	defs []parser.FunctionDefinition

	// lineStarts maps byte offsets to line numbers
	lineStarts []int

	// commentLines marks lines whose trimmed content starts with #
	commentLines []bool

	// paramNames is every parameter name in the document, sigils stripped,
	// used to suppress built-in classification document-wide
	paramNames map[string]bool
}

func newClassifier(content []byte, defs []parser.FunctionDefinition) *classifier {
	text := string(content)

	lines := position.SplitLines(text)
	commentLines := make([]bool, len(lines))
	for i, line := range lines {
		commentLines[i] = position.IsCommentLine(line)
	}

	return &classifier{
		text:         text,
		defs:         defs,
		lineStarts:   position.LineStartOffsets(text),
		commentLines: commentLines,
		paramNames:   parser.ParameterNames(defs),
	}
}

// classify scans the text for identifier tokens and applies the priority
// rules to each in document order.
func (c *classifier) classify() []Token {
	tokens := make([]Token, 0)

	for _, m := range identRegex.FindAllStringIndex(c.text, -1) {
		word := c.text[m[0]:m[1]]
		line := position.LineForOffset(c.lineStarts, m[0])

		if c.commentLines[line] {
			continue
		}

		tok, ok := c.classifyWord(word, line, m[0])
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

func (c *classifier) classifyWord(word string, line, offset int) (Token, bool) {
	rng := position.NewBasicPosition(word, offset)

	if enclosing := parser.EnclosingDefinition(c.defs, line); enclosing != nil {
		if isParameterOf(enclosing, word) {
			return Token{Type: TokenParameter, Modifier: ModifierNone, Range: rng}, true
		}
	}

	for i := range c.defs {
		if c.defs[i].Name == word {
			return Token{Type: TokenFunction, Modifier: ModifierNone, Range: rng}, true
		}
	}

	if builtins.Is(word) && !c.paramNames[word] {
		return Token{Type: TokenFunction, Modifier: ModifierDefaultLibrary, Range: rng}, true
	}

	return Token{}, false
}

// isParameterOf reports whether word names a parameter of def. Value
// parameters are compared with the sigil stripped, filter parameters
// verbatim.
func isParameterOf(def *parser.FunctionDefinition, word string) bool {
	for _, arg := range def.ValueArgs {
		if strings.TrimPrefix(arg, "$") == word {
			return true
		}
	}
	for _, arg := range def.FilterArgs {
		if arg == word {
			return true
		}
	}
	return false
}
