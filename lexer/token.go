package lexer

import "fmt"

// EOF is the reserved kind of the end-of-input sentinel token.
const EOF = "EOF"

// StateDefault is the state a Stream starts in when the caller does not name
// one.
const StateDefault = "main"

// Position locates a point in the source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based
}

// Token is a single lexical unit produced by a Stream. Tokens are plain
// values; once produced they are never mutated.
type Token struct {
	Kind   string // name of the rule that matched
	Text   string // exact matched substring
	Start  int    // byte offset of the first matched byte
	End    int    // byte offset one past the last matched byte
	Line   int    // 1-based line of Start
	Column int    // 1-based column of Start
}

// Pos returns the token's start position.
func (t Token) Pos() Position {
	return Position{Offset: t.Start, Line: t.Line, Column: t.Column}
}

// IsEOF reports whether the token is the end-of-input sentinel.
func (t Token) IsEOF() bool { return t.Kind == EOF }

func (t Token) String() string {
	if t.IsEOF() {
		return fmt.Sprintf("EOF %d:%d", t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%q) %d:%d", t.Kind, t.Text, t.Line, t.Column)
}
