package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snackmonger/lexkit/lexer"
)

func tokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	table, err := lexer.Compile(
		lexer.Literal("EQ", "=").WithPriority(10),
		lexer.Pattern("IDENT", "[a-z]+"),
		lexer.Pattern("NUM", "[0-9]+"),
		lexer.Pattern("WS", "[ \t\n]+").Ignored(),
	)
	require.NoError(t, err)
	tokens, err := table.Tokenize(src, "").All()
	require.NoError(t, err)
	return tokens
}

func TestPeekDoesNotConsume(t *testing.T) {
	c := NewCursor(tokenize(t, "a b c"))
	assert.Equal(t, "a", c.Peek(0).Text)
	assert.Equal(t, "b", c.Peek(1).Text)
	assert.Equal(t, "c", c.Peek(2).Text)
	assert.Equal(t, "a", c.Peek(0).Text)
	assert.Equal(t, 0, c.Pos())
}

func TestPeekNegativeTreatedAsZero(t *testing.T) {
	c := NewCursor(tokenize(t, "a b"))
	_, err := c.Advance()
	require.NoError(t, err)
	assert.Equal(t, c.Peek(0), c.Peek(-1))
	assert.Equal(t, "b", c.Peek(-5).Text)
}

func TestPeekPastEndReturnsEOFMarker(t *testing.T) {
	c := NewCursor(tokenize(t, "a"))
	assert.True(t, c.Peek(1).IsEOF())
	assert.True(t, c.Peek(100).IsEOF())
}

func TestAdvance(t *testing.T) {
	c := NewCursor(tokenize(t, "a b"))
	tok, err := c.Advance()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text)
	tok, err = c.Advance()
	require.NoError(t, err)
	assert.Equal(t, "b", tok.Text)
	assert.True(t, c.AtEnd())
}

func TestAdvancePastEnd(t *testing.T) {
	c := NewCursor(tokenize(t, "a"))
	_, err := c.Advance()
	require.NoError(t, err)

	_, err = c.Advance()
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, UnexpectedEnd, pe.Kind)
}

func TestExpect(t *testing.T) {
	c := NewCursor(tokenize(t, "a = 1"))
	tok, err := c.Expect("IDENT")
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Text)
	_, err = c.Expect("EQ")
	require.NoError(t, err)
	tok, err = c.Expect("NUM")
	require.NoError(t, err)
	assert.Equal(t, "1", tok.Text)
}

func TestExpectMismatchDoesNotConsume(t *testing.T) {
	c := NewCursor(tokenize(t, "a b"))
	before := c.Peek(0)

	_, err := c.Expect("NUM")
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, UnexpectedToken, pe.Kind)
	assert.Equal(t, []string{"NUM"}, pe.Expected)
	assert.Equal(t, before, pe.Token)

	// The cursor must not have moved.
	assert.Equal(t, before, c.Peek(0))
	assert.Equal(t, 0, c.Pos())
}

func TestExpectAtEnd(t *testing.T) {
	c := NewCursor(tokenize(t, ""))
	_, err := c.Expect("IDENT")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, UnexpectedEnd, pe.Kind)
	assert.Equal(t, []string{"IDENT"}, pe.Expected)
}

func TestExpectAny(t *testing.T) {
	c := NewCursor(tokenize(t, "7"))
	tok, err := c.ExpectAny("IDENT", "NUM")
	require.NoError(t, err)
	assert.Equal(t, "NUM", tok.Kind)

	c = NewCursor(tokenize(t, "="))
	_, err = c.ExpectAny("IDENT", "NUM")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []string{"IDENT", "NUM"}, pe.Expected)
}

func TestExpectEOFKind(t *testing.T) {
	c := NewCursor(tokenize(t, "a"))
	_, err := c.Advance()
	require.NoError(t, err)
	tok, err := c.Expect(lexer.EOF)
	require.NoError(t, err)
	assert.True(t, tok.IsEOF())
	// Accepting the end marker must not push the position past Len.
	assert.Equal(t, c.Len(), c.Pos())
}

func TestCheckAndMatch(t *testing.T) {
	c := NewCursor(tokenize(t, "a = 1"))
	assert.True(t, c.Check("IDENT"))
	assert.False(t, c.Check("NUM"))
	assert.Equal(t, 0, c.Pos())

	assert.True(t, c.Match("NUM", "IDENT"))
	assert.Equal(t, 1, c.Pos())
	assert.False(t, c.Match("IDENT"))
	assert.Equal(t, 1, c.Pos())
	assert.True(t, c.Match("EQ"))
}

func TestCheckpointRestore(t *testing.T) {
	c := NewCursor(tokenize(t, "a b c d"))
	_, err := c.Advance()
	require.NoError(t, err)

	mark := c.Checkpoint()
	want := c.Peek(0)

	_, err = c.Advance()
	require.NoError(t, err)
	_, err = c.Advance()
	require.NoError(t, err)

	c.Restore(mark)
	assert.Equal(t, want, c.Peek(0))

	tok, err := c.Advance()
	require.NoError(t, err)
	assert.Equal(t, "b", tok.Text)
}

func TestRestoreForward(t *testing.T) {
	c := NewCursor(tokenize(t, "a b"))
	_, err := c.Advance()
	require.NoError(t, err)
	mark := c.Checkpoint()
	c.Restore(Mark{})
	assert.Equal(t, "a", c.Peek(0).Text)
	c.Restore(mark)
	assert.Equal(t, "b", c.Peek(0).Text)
}

func TestEndMarkerFromTrailingEOF(t *testing.T) {
	tokens := tokenize(t, "ab\ncd")
	c := NewCursor(tokens)
	assert.Equal(t, 2, c.Len())
	end := c.Peek(2)
	assert.True(t, end.IsEOF())
	assert.Equal(t, 2, end.Line)
	assert.Equal(t, 3, end.Column)
}

func TestEndMarkerSynthesized(t *testing.T) {
	tokens := []lexer.Token{
		{Kind: "IDENT", Text: "ab", Start: 0, End: 2, Line: 1, Column: 1},
		{Kind: "BLOCK", Text: "x\ny", Start: 2, End: 5, Line: 1, Column: 3},
	}
	c := NewCursor(tokens)
	end := c.Peek(2)
	assert.True(t, end.IsEOF())
	assert.Equal(t, 5, end.Start)
	assert.Equal(t, 2, end.Line)
	assert.Equal(t, 2, end.Column)
}

func TestEmptyCursor(t *testing.T) {
	c := NewCursor(nil)
	assert.True(t, c.AtEnd())
	assert.True(t, c.Peek(0).IsEOF())
	_, err := c.Advance()
	require.Error(t, err)
}

func TestErrorf(t *testing.T) {
	c := NewCursor(tokenize(t, "zz"))
	tok, err := c.Expect("IDENT")
	require.NoError(t, err)
	perr := Errorf(tok, "unknown name %q", tok.Text)
	assert.Equal(t, Semantic, perr.Kind)
	assert.Contains(t, perr.Error(), `unknown name "zz"`)
	assert.Contains(t, perr.Error(), "line 1, col 1")
}

func TestFurthest(t *testing.T) {
	near := &ParseError{Kind: UnexpectedToken, Token: lexer.Token{Start: 2}}
	far := &ParseError{Kind: UnexpectedToken, Token: lexer.Token{Start: 9}}

	assert.Same(t, far, Furthest(near, far))
	assert.Same(t, far, Furthest(far, near))
	assert.Same(t, far, Furthest(nil, far, nil, near))
	assert.Nil(t, Furthest(nil, nil))

	// A non-ParseError is not a backtrackable failure and wins outright.
	fatal := errors.New("io failure")
	assert.Same(t, fatal, Furthest(near, fatal, far))
}

func TestFurthestTiesKeepFirst(t *testing.T) {
	a := &ParseError{Kind: UnexpectedToken, Token: lexer.Token{Start: 4}}
	b := &ParseError{Kind: UnexpectedEnd, Token: lexer.Token{Start: 4}}
	assert.Same(t, a, Furthest(a, b))
}
