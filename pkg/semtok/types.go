/*
Token Types and Modifiers:
------------------------
This file defines the core types used for semantic token generation.

Each token carries a type, an optional modifier, and the position of the
identifier it covers:

	+-------------+     +------------+     +-----------+
	| TokenType   | --> | Modifier   | --> | Position  |
	+-------------+     +------------+     +-----------+
	      |                   |                 |
	  [Parameter,        [None,            [Offset,
	   Function]          DefaultLibrary]   Text]
*/
package semtok

import (
	"github.com/walteh/jqls/pkg/position"
)

// TokenType represents the semantic meaning of a token
type TokenType uint32

const (
	// TokenParameter represents a parameter of the enclosing definition
	// (e.g., $a or b in "def foo($a; b):")
	TokenParameter TokenType = iota + 1

	// TokenFunction represents a function reference (user-defined or,
	// with ModifierDefaultLibrary, built-in)
	TokenFunction
)

// TokenModifier represents additional characteristics of a token
type TokenModifier uint32

const (
	// ModifierNone indicates no special characteristics
	ModifierNone TokenModifier = 0

	// ModifierDefaultLibrary indicates a built-in function
	ModifierDefaultLibrary TokenModifier = 1 << iota
)

// Token represents a semantic token with its type, modifiers, and position
type Token struct {
	// Type indicates the semantic meaning of the token
	Type TokenType

	// Modifier indicates any special characteristics
	Modifier TokenModifier

	// Range indicates the token's position in the source
	Range position.RawPosition
}

// String returns a human-readable representation of the token type
func (t TokenType) String() string {
	switch t {
	case TokenParameter:
		return "parameter"
	case TokenFunction:
		return "function"
	default:
		return "unknown"
	}
}

// String returns a human-readable representation of the token modifier
func (m TokenModifier) String() string {
	switch m {
	case ModifierNone:
		return "none"
	case ModifierDefaultLibrary:
		return "defaultLibrary"
	default:
		return "unknown"
	}
}
