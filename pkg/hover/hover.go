// Package hover provides functionality for generating hover information.
package hover

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/jqls/pkg/builtins"
	"github.com/walteh/jqls/pkg/parser"
	"github.com/walteh/jqls/pkg/position"
	"github.com/walteh/jqls/pkg/semtok"
	"gitlab.com/tozd/go/errors"
)

// HoverInfo represents the information to be displayed in a hover tooltip
type HoverInfo struct {
	// Content is the markdown content to display
	Content []string
	// Position is the position in the document that this hover applies to
	Position position.RawPosition
}

// BuildHoverResponseFromText returns hover information for the classified
// token overlapping hoverPosition, or nil when the position does not cover a
// classified token.
func BuildHoverResponseFromText(ctx context.Context, content []byte, hoverPosition position.RawPosition) (*HoverInfo, error) {
	tokens, err := semtok.GetTokensForText(ctx, content)
	if err != nil {
		return nil, errors.Errorf("classifying tokens: %w", err)
	}

	defs := parser.ParseDefinitions(ctx, content)

	for _, tok := range tokens {
		if !hoverPosition.HasRangeOverlapWith(tok.Range) {
			continue
		}

		zerolog.Ctx(ctx).Debug().
			Str("token", tok.Range.Text).
			Int("offset", tok.Range.Offset).
			Str("type", tok.Type.String()).
			Msg("token overlaps hover position")

		return formatToken(string(content), tok, defs), nil
	}

	return nil, nil
}

func formatToken(text string, tok semtok.Token, defs []parser.FunctionDefinition) *HoverInfo {
	var sb strings.Builder

	switch {
	case tok.Type == semtok.TokenParameter:
		line, _ := tok.Range.GetLineAndColumn(text)
		if enclosing := parser.EnclosingDefinition(defs, line); enclosing != nil {
			kind := "filter parameter"
			for _, arg := range enclosing.ValueArgs {
				if strings.TrimPrefix(arg, "$") == tok.Range.Text {
					kind = "value parameter"
				}
			}
			sb.WriteString(kind + " of `" + enclosing.Signature() + "`")
		} else {
			sb.WriteString("parameter")
		}

	case tok.Modifier == semtok.ModifierDefaultLibrary:
		sb.WriteString("`" + tok.Range.Text + "` (builtin)")
		if doc, ok := builtins.Doc(tok.Range.Text); ok {
			sb.WriteString("\n\n" + doc)
		}

	default:
		// user-defined function: show the recovered header of the first
		// record with this name
		for i := range defs {
			if defs[i].Name == tok.Range.Text {
				sb.WriteString("`def " + defs[i].Signature() + ":`")
				break
			}
		}
	}

	return &HoverInfo{
		Content:  []string{sb.String()},
		Position: tok.Range,
	}
}
