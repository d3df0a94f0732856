package lexer

import (
	"fmt"
	"strings"
)

// LexError reports a position where scanning could not continue: either no
// rule matched, or a state transition was impossible. Text holds the minimal
// offending slice (one rune for an unmatchable character).
type LexError struct {
	Message string
	Offset  int
	Line    int
	Column  int
	Text    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Column, e.Message)
}

// Excerpt renders the offending source line with a caret under the error
// column, for terminal diagnostics:
//
//	forget ::= (for ::# forget for get)
//	------------------^
//
// Returns "" if the error's line is out of range for src.
func (e *LexError) Excerpt(src string) string {
	lines := strings.Split(src, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return ""
	}
	return lines[e.Line-1] + "\n" + strings.Repeat("-", e.Column-1) + "^"
}
