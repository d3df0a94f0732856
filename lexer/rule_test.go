package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyRuleSet(t *testing.T) {
	_, err := Compile()
	require.Error(t, err)
}

func TestCompileMissingKind(t *testing.T) {
	_, err := Compile(Literal("", "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing kind")
}

func TestCompileReservedKind(t *testing.T) {
	_, err := Compile(Literal(EOF, "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestCompileEmptyLiteral(t *testing.T) {
	_, err := Compile(Literal("X", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty literal")
}

func TestCompileBadPattern(t *testing.T) {
	_, err := Compile(Pattern("X", "[unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestCompileUnknownTransitionTarget(t *testing.T) {
	_, err := Compile(Literal("OPEN", "{").PushState("nowhere"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nowhere"`)

	_, err = Compile(Literal("GO", ">").SwitchState("nowhere"))
	require.Error(t, err)
}

func TestCompileKnownTransitionTarget(t *testing.T) {
	_, err := Compile(
		Literal("OPEN", "{").PushState("inner"),
		Literal("CLOSE", "}").In("inner").PopState(),
	)
	require.NoError(t, err)
}

func TestRuleModifiersReturnCopies(t *testing.T) {
	base := Pattern("IDENT", "[a-z]+")
	boosted := base.WithPriority(5)
	assert.Equal(t, 0, base.Priority)
	assert.Equal(t, 5, boosted.Priority)

	scoped := base.In("string")
	assert.Empty(t, base.states)
	assert.Equal(t, []string{"string"}, scoped.states)
}

func TestLiteralMatcherAnchored(t *testing.T) {
	m := literalMatcher("if")
	assert.Equal(t, 2, m.match("iffy", 0))
	assert.Equal(t, -1, m.match("xif", 0))
	assert.Equal(t, 2, m.match("xif", 1))
}

func TestPatternMatcherAnchored(t *testing.T) {
	table := mustCompile(t, Pattern("NUM", "[0-9]+"))
	// The pattern must not skip ahead to a later match.
	stream := table.Tokenize("a1", "")
	_, err := stream.Next()
	require.Error(t, err)
	lexErr, ok := err.(*LexError)
	require.True(t, ok)
	assert.Equal(t, 0, lexErr.Offset)
}

func TestPatternCaretStaysAnchored(t *testing.T) {
	// A user-supplied leading ^ is harmless: matching is anchored either way.
	table := mustCompile(t, Pattern("A", "^a+"), Pattern("B", "b+"))
	tokens := collectTokens(t, table, "aab")
	require.Len(t, tokens, 3)
	assert.Equal(t, "aa", tokens[0].Text)
	assert.Equal(t, "b", tokens[1].Text)
}
