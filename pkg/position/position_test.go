package position_test

import (
	"testing"

	"github.com/walteh/jqls/pkg/position"
)

func TestGetLineAndColumn(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{
			name:     "empty text",
			text:     "",
			offset:   0,
			wantLine: 0,
			wantCol:  0,
		},
		{
			name:     "single line, middle position",
			text:     "def foo: .",
			offset:   4,
			wantLine: 0,
			wantCol:  4,
		},
		{
			name:     "multiple lines, second line",
			text:     "def foo:\n  .bar\n.baz",
			offset:   11,
			wantLine: 1,
			wantCol:  2,
		},
		{
			name:     "multiple lines, third line",
			text:     "def foo:\n  .bar\n.baz",
			offset:   16,
			wantLine: 2,
			wantCol:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := position.NewBasicPosition("", tt.offset)
			gotLine, gotCol := pos.GetLineAndColumn(tt.text)
			if gotLine != tt.wantLine || gotCol != tt.wantCol {
				t.Errorf("GetLineAndColumn() = (%v, %v), want (%v, %v)", gotLine, gotCol, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestNewRawPositionFromLineAndColumn(t *testing.T) {
	text := "def foo:\n  .bar\n.baz"

	pos := position.NewRawPositionFromLineAndColumn(1, 2, ".bar", text)
	if pos.Offset != 11 {
		t.Errorf("Offset = %v, want 11", pos.Offset)
	}
	if pos.Text != ".bar" {
		t.Errorf("Text = %v, want .bar", pos.Text)
	}
}

func TestNewRawPositionFromLineAndColumnOutOfRange(t *testing.T) {
	text := "def f:\n  ."

	tests := []struct {
		name string
		line int
		col  int
	}{
		{name: "line past end of document", line: 99, col: 0},
		{name: "column past end of line", line: 1, col: 50},
		{name: "both past end", line: 99, col: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// out-of-range positions clamp to the document end instead of panicking
			pos := position.NewRawPositionFromLineAndColumn(tt.line, tt.col, "", text)
			if pos.Offset != len(text) {
				t.Errorf("Offset = %v, want %v", pos.Offset, len(text))
			}
		})
	}
}

func TestGetRange(t *testing.T) {
	text := "def foo:\n  .bar\n.baz"

	tests := []struct {
		name      string
		pos       position.RawPosition
		wantStart position.Place
		wantEnd   position.Place
	}{
		{
			name:      "token on first line",
			pos:       position.NewBasicPosition("foo", 4),
			wantStart: position.Place{Line: 0, Character: 4},
			wantEnd:   position.Place{Line: 0, Character: 7},
		},
		{
			name:      "token on second line",
			pos:       position.NewBasicPosition(".bar", 11),
			wantStart: position.Place{Line: 1, Character: 2},
			wantEnd:   position.Place{Line: 1, Character: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pos.GetRange(text)
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("GetRange() = %+v, want {Start:%+v End:%+v}", got, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestIndentWidth(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{name: "no indent", line: "def foo:", want: 0},
		{name: "spaces", line: "  .bar", want: 2},
		{name: "tab", line: "\t.bar", want: 1},
		{name: "mixed", line: " \t .bar", want: 3},
		{name: "blank", line: "", want: 0},
		{name: "whitespace only", line: "   ", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := position.IndentWidth(tt.line); got != tt.want {
				t.Errorf("IndentWidth(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsCommentLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "plain comment", line: "# hello", want: true},
		{name: "indented comment", line: "   # hello", want: true},
		{name: "not a comment", line: "def foo:", want: false},
		{name: "hash mid-line", line: ".x # trailing", want: false},
		{name: "blank", line: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := position.IsCommentLine(tt.line); got != tt.want {
				t.Errorf("IsCommentLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLineOffsets(t *testing.T) {
	text := "ab\ncd\n\nef"
	starts := position.LineStartOffsets(text)

	want := []int{0, 3, 6, 7}
	if len(starts) != len(want) {
		t.Fatalf("LineStartOffsets() = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("LineStartOffsets() = %v, want %v", starts, want)
		}
	}

	tests := []struct {
		offset int
		want   int
	}{
		{offset: 0, want: 0},
		{offset: 2, want: 0},
		{offset: 3, want: 1},
		{offset: 6, want: 2},
		{offset: 8, want: 3},
	}
	for _, tt := range tests {
		if got := position.LineForOffset(starts, tt.offset); got != tt.want {
			t.Errorf("LineForOffset(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
