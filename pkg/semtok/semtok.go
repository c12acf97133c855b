/*
Package semtok classifies identifier tokens in filter-language source.

Core flow:
-------------

	       Input
	         |
	         v
	  +------------+
	  | Source     |
	  | Text       |
	  +------------+
	         |
	 Recover Definitions
	         |
	         v
	  +------------+
	  | Identifier |
	  | Scan       |
	  +------------+
	         |
	 Classify by Priority
	         |
	         v
	  +------------+
	  | Semantic   |
	  | Tokens     |
	  +------------+

Classification priority per token, first match wins:

  1. parameter of the enclosing definition
 2. name of any recovered definition (forward and backward references)
 3. built-in function, unless the name is also a parameter name anywhere
    in the document (parameters shadow built-ins document-wide)
 4. no token; the identifier is left to generic styling

Tokens on comment lines are never classified.
*/
package semtok

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/jqls/pkg/parser"
)

// GetTokensForText returns semantic tokens for the given source text.
// This is the main entry point for semantic token generation. Definitions
// are recovered from scratch on every call; nothing is cached across calls.
//
//	Example:
//	   tokens, err := GetTokensForText(ctx, []byte("def foo($a): $a;"))
//	   if err != nil {
//	       return err
//	   }
//	   // Use tokens...
func GetTokensForText(ctx context.Context, content []byte) ([]Token, error) {
	defs := parser.ParseDefinitions(ctx, content)

	c := newClassifier(content, defs)
	tokens := c.classify()

	zerolog.Ctx(ctx).Trace().
		Int("definitions", len(defs)).
		Int("tokens", len(tokens)).
		Msg("classified semantic tokens")

	return tokens, nil
}
