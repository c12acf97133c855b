package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/jqls/pkg/position"
)

// FunctionDefinition is one recovered function definition. EndLine is an
// estimate derived from indentation, not a true parse boundary; ranges of
// nested definitions overlap rather than forming a tree.
type FunctionDefinition struct {
	// Name is the identifier from the definition header
	Name string `json:"name"`

	// ValueArgs are the sigil-prefixed parameters, sigil retained, in source order
	ValueArgs []string `json:"valueArgs"`

	// FilterArgs are the plain parameters, in source order
	FilterArgs []string `json:"filterArgs"`

	// StartLine and EndLine are the zero-based, inclusive line range over
	// which the definition's parameters are considered in scope
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`

	// Indent is the leading-whitespace width of the header line
	Indent int `json:"indent"`

	// HeaderPos is the position of the name identifier in the source
	HeaderPos position.RawPosition `json:"headerPos"`
}

// Signature renders the definition header without the trailing colon, e.g.
// "foo($a; b)". Value parameters come first since the original interleaving
// is not preserved.
func (d *FunctionDefinition) Signature() string {
	if len(d.ValueArgs)+len(d.FilterArgs) == 0 {
		return d.Name
	}
	args := make([]string, 0, len(d.ValueArgs)+len(d.FilterArgs))
	args = append(args, d.ValueArgs...)
	args = append(args, d.FilterArgs...)
	return d.Name + "(" + strings.Join(args, "; ") + ")"
}

// ExtentStrategy selects how a definition's end line is estimated.
type ExtentStrategy int

const (
	// ExtentIndentation ends a definition at the line before the first
	// subsequent non-blank, non-comment line whose indentation is less than
	// or equal to the header's
	ExtentIndentation ExtentStrategy = iota

	// ExtentNextHeader ends a definition at the line before the next header
	// found anywhere later in the document, regardless of indentation
	ExtentNextHeader
)

func (s ExtentStrategy) String() string {
	switch s {
	case ExtentIndentation:
		return "indentation"
	case ExtentNextHeader:
		return "next-header"
	default:
		return "unknown"
	}
}

// headerRegex recognizes a definition header: optional leading whitespace,
// the def keyword, an identifier, an optional parenthesized argument list,
// and a colon. Lines that fail the pattern (unbalanced parentheses, missing
// colon) simply produce no record.
var headerRegex = regexp.MustCompile(`^(\s*)def\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(?:\(([^)]*)\))?\s*:`)

// ParseDefinitions recovers all function definitions from content using the
// indentation extent strategy. The result is in document order and is
// recomputed from scratch on every call.
func ParseDefinitions(ctx context.Context, content []byte) []FunctionDefinition {
	return ParseDefinitionsWithStrategy(ctx, content, ExtentIndentation)
}

// ParseDefinitionsWithStrategy recovers all function definitions from content
// using the given extent strategy.
func ParseDefinitionsWithStrategy(ctx context.Context, content []byte, strategy ExtentStrategy) []FunctionDefinition {
	lines := position.SplitLines(string(content))

	// First pass: collect headers
	defs := make([]FunctionDefinition, 0)
	offset := 0
	for i, line := range lines {
		m := headerRegex.FindStringSubmatchIndex(line)
		if m == nil {
			offset += len(line) + 1
			continue
		}

		indent := m[3] - m[2]
		name := line[m[4]:m[5]]

		def := FunctionDefinition{
			Name:       name,
			ValueArgs:  make([]string, 0),
			FilterArgs: make([]string, 0),
			StartLine:  i,
			EndLine:    len(lines) - 1,
			Indent:     indent,
			HeaderPos:  position.NewBasicPosition(name, offset+m[4]),
		}

		if m[6] >= 0 {
			def.ValueArgs, def.FilterArgs = splitArgs(line[m[6]:m[7]])
		}

		defs = append(defs, def)
		offset += len(line) + 1
	}

	// Second pass: compute extents
	for i := range defs {
		switch strategy {
		case ExtentNextHeader:
			if i+1 < len(defs) {
				defs[i].EndLine = defs[i+1].StartLine - 1
			}
		default:
			defs[i].EndLine = indentationExtent(lines, defs[i].StartLine, defs[i].Indent)
		}

		zerolog.Ctx(ctx).Trace().
			Str("name", defs[i].Name).
			Int("start_line", defs[i].StartLine).
			Int("end_line", defs[i].EndLine).
			Strs("value_args", defs[i].ValueArgs).
			Strs("filter_args", defs[i].FilterArgs).
			Msg("recovered definition")
	}

	return defs
}

// indentationExtent scans forward from the line after the header, skipping
// blank and comment lines, and ends the extent at the line before the first
// line indented at or shallower than the header.
func indentationExtent(lines []string, headerLine, headerIndent int) int {
	for i := headerLine + 1; i < len(lines); i++ {
		if position.IsBlankLine(lines[i]) || position.IsCommentLine(lines[i]) {
			continue
		}
		if position.IndentWidth(lines[i]) <= headerIndent {
			return i - 1
		}
	}
	return len(lines) - 1
}

// splitArgs partitions a raw argument-list string into value parameters
// (sigil-prefixed, sigil retained) and filter parameters. Order within each
// sublist follows source order; the combined interleaving is not preserved.
func splitArgs(raw string) (valueArgs, filterArgs []string) {
	valueArgs = make([]string, 0)
	filterArgs = make([]string, 0)
	for _, piece := range strings.Split(raw, ";") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if strings.HasPrefix(piece, "$") {
			valueArgs = append(valueArgs, piece)
		} else {
			filterArgs = append(filterArgs, piece)
		}
	}
	return valueArgs, filterArgs
}

// EnclosingDefinition returns the first definition whose line range contains
// the given line, or nil. The forward scan is the tie-break when ranges
// overlap.
func EnclosingDefinition(defs []FunctionDefinition, line int) *FunctionDefinition {
	for i := range defs {
		if line >= defs[i].StartLine && line <= defs[i].EndLine {
			return &defs[i]
		}
	}
	return nil
}

// ParameterNames returns every parameter name appearing in any definition,
// value-parameter sigils stripped. Used for the document-wide shadow check.
func ParameterNames(defs []FunctionDefinition) map[string]bool {
	names := make(map[string]bool)
	for _, def := range defs {
		for _, arg := range def.ValueArgs {
			names[strings.TrimPrefix(arg, "$")] = true
		}
		for _, arg := range def.FilterArgs {
			names[arg] = true
		}
	}
	return names
}
