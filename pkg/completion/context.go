package completion

import (
	"strings"
	"unicode/utf8"
)

// CompletionContext holds information about the completion request context
type CompletionContext struct {
	Content    string
	Line       int
	Character  int
	AfterSigil bool
}

// NewCompletionContext creates a new completion context. charBeforeCursor is
// the character preceding the cursor as reported by the host; when empty it
// is derived from the content.
func NewCompletionContext(content string, line, character int, charBeforeCursor string) *CompletionContext {
	cc := &CompletionContext{
		Content:   content,
		Line:      line,
		Character: character,
	}

	if charBeforeCursor == "" {
		charBeforeCursor = cc.CharBeforeCursor()
	}
	cc.AfterSigil = charBeforeCursor == "$"

	return cc
}

// CharBeforeCursor returns the character immediately before the cursor, or
// the empty string at the start of a line or outside the document. The
// character is decoded as a rune, so a multibyte character before the cursor
// comes back whole.
func (c *CompletionContext) CharBeforeCursor() string {
	lines := strings.Split(c.Content, "\n")
	if c.Line < 0 || c.Line >= len(lines) {
		return ""
	}
	currentLine := lines[c.Line]
	if c.Character <= 0 || c.Character > len(currentLine) {
		return ""
	}
	r, size := utf8.DecodeLastRuneInString(currentLine[:c.Character])
	if size == 0 {
		return ""
	}
	return string(r)
}
