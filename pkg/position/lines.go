package position

import "strings"

// IndentWidth returns the number of leading whitespace characters on a line.
// Tabs and spaces both count as one column, matching how the definition
// scanner compares indentation depths.
func IndentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// IsBlankLine reports whether a line contains only whitespace.
func IsBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsCommentLine reports whether a line's trimmed content begins with the
// comment marker.
func IsCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// SplitLines splits text into lines without the trailing newline characters.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// LineStartOffsets returns the byte offset of the start of each line in text.
func LineStartOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineForOffset returns the zero-based line index containing the given byte
// offset, given the offsets produced by LineStartOffsets.
func LineForOffset(starts []int, offset int) int {
	line := 0
	for line+1 < len(starts) && starts[line+1] <= offset {
		line++
	}
	return line
}
