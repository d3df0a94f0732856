package parser

import "github.com/Snackmonger/lexkit/lexer"

// Cursor is a movable read-only position over a token sequence. It owns no
// tokens, only an index; the position is always in [0, Len()], with Len()
// meaning end of input.
type Cursor struct {
	tokens []lexer.Token // without the trailing EOF sentinel
	end    lexer.Token   // the marker Peek returns past the end
	pos    int
}

// Mark is a saved cursor position for Restore. Marks are cheap values; taking
// one never copies tokens.
type Mark struct {
	pos int
}

// NewCursor wraps a token slice. A trailing EOF sentinel, as produced by
// Stream.All, becomes the cursor's end marker; when the slice has none, a
// marker is synthesized just past the last token.
func NewCursor(tokens []lexer.Token) *Cursor {
	end := lexer.Token{Kind: lexer.EOF, Line: 1, Column: 1}
	if n := len(tokens); n > 0 {
		if tokens[n-1].IsEOF() {
			end = tokens[n-1]
			tokens = tokens[:n-1]
		} else {
			last := tokens[n-1]
			line, col := last.Line, last.Column
			for i := 0; i < len(last.Text); i++ {
				if last.Text[i] == '\n' {
					line++
					col = 1
				} else {
					col++
				}
			}
			end = lexer.Token{Kind: lexer.EOF, Start: last.End, End: last.End, Line: line, Column: col}
		}
	}
	return &Cursor{tokens: tokens, end: end}
}

// Peek returns the token k positions ahead without consuming anything. Past
// the end it returns the EOF marker, never an error. A negative k is treated
// as 0; the cursor never looks behind itself.
func (c *Cursor) Peek(k int) lexer.Token {
	if k < 0 {
		k = 0
	}
	if c.pos+k >= len(c.tokens) {
		return c.end
	}
	return c.tokens[c.pos+k]
}

// Advance consumes and returns the current token. At end of input it returns
// an UnexpectedEnd error and does not move.
func (c *Cursor) Advance() (lexer.Token, error) {
	if c.pos >= len(c.tokens) {
		return lexer.Token{}, &ParseError{Kind: UnexpectedEnd, Token: c.end}
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// Expect consumes and returns the current token only if its kind matches.
// On a mismatch the cursor does not move and the error carries both the
// expected kind and the offending token.
func (c *Cursor) Expect(kind string) (lexer.Token, error) {
	return c.ExpectAny(kind)
}

// ExpectAny is Expect over a set of acceptable kinds.
func (c *Cursor) ExpectAny(kinds ...string) (lexer.Token, error) {
	tok := c.Peek(0)
	for _, k := range kinds {
		if tok.Kind == k {
			if c.pos < len(c.tokens) {
				c.pos++
			}
			return tok, nil
		}
	}
	if c.AtEnd() {
		return lexer.Token{}, &ParseError{Kind: UnexpectedEnd, Expected: kinds, Token: c.end}
	}
	return lexer.Token{}, &ParseError{Kind: UnexpectedToken, Expected: kinds, Token: tok}
}

// Check reports whether the current token has the given kind, without
// consuming it.
func (c *Cursor) Check(kind string) bool {
	return c.Peek(0).Kind == kind
}

// Match consumes the current token if its kind is any of kinds, reporting
// whether it did.
func (c *Cursor) Match(kinds ...string) bool {
	for _, k := range kinds {
		if c.Check(k) {
			if c.pos < len(c.tokens) {
				c.pos++
			}
			return true
		}
	}
	return false
}

// Checkpoint saves the current position. Restore with any mark from the same
// cursor rewinds (or forwards) in O(1), which is what alternation-style
// backtracking is built on.
func (c *Cursor) Checkpoint() Mark {
	return Mark{pos: c.pos}
}

// Restore moves the cursor back to a saved mark.
func (c *Cursor) Restore(m Mark) {
	c.pos = m.pos
}

// AtEnd reports whether every token has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.tokens)
}

// Pos returns the current position index, a consumed-token count usable for
// furthest-failure comparisons.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of tokens in the sequence, excluding the EOF marker.
func (c *Cursor) Len() int { return len(c.tokens) }
