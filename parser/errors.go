package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Snackmonger/lexkit/lexer"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// UnexpectedToken: the current token's kind was not in the expected set.
	UnexpectedToken ErrorKind = iota
	// UnexpectedEnd: the cursor was already at end of input.
	UnexpectedEnd
	// Semantic: a caller-defined rejection built with Errorf.
	Semantic
)

// ParseError reports a structural mismatch in the token stream. It is a plain
// value: Expect and Advance return it, nothing panics, and recovery is the
// caller's concern.
type ParseError struct {
	Kind     ErrorKind
	Expected []string    // kinds that would have been accepted, if any
	Token    lexer.Token // offending token; the EOF marker for UnexpectedEnd
	Message  string      // set for Semantic errors
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		if len(e.Expected) > 0 {
			return fmt.Sprintf("line %d, col %d: expected %s, got end of input",
				e.Token.Line, e.Token.Column, strings.Join(e.Expected, " or "))
		}
		return fmt.Sprintf("line %d, col %d: unexpected end of input", e.Token.Line, e.Token.Column)
	case Semantic:
		return fmt.Sprintf("line %d, col %d: %s", e.Token.Line, e.Token.Column, e.Message)
	default:
		return fmt.Sprintf("line %d, col %d: expected %s, got %s (%q)",
			e.Token.Line, e.Token.Column, strings.Join(e.Expected, " or "), e.Token.Kind, e.Token.Text)
	}
}

// Errorf builds a caller-defined semantic rejection anchored at the given
// token, for grammar functions that accept a token's kind but reject its
// content.
func Errorf(tok lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{Kind: Semantic, Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Furthest returns the error whose offending token starts latest in the
// source. When several alternatives fail, the one that consumed the most
// input before failing is usually the most informative, so callers
// conventionally report that one. Nil errors are skipped; an error that is
// not a *ParseError is returned as-is, since it is not a backtrackable
// failure. Earlier arguments win ties. Returns nil if every argument is nil.
func Furthest(errs ...error) error {
	var best *ParseError
	for _, err := range errs {
		if err == nil {
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			return err
		}
		if best == nil || pe.Token.Start > best.Token.Start {
			best = pe
		}
	}
	if best == nil {
		return nil
	}
	return best
}
