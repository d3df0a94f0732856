package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Stream lazily produces the tokens of one source text. A Stream is a
// single-goroutine value; the table backing it is immutable and may back
// other Streams at the same time.
type Stream struct {
	src   string
	table *RuleTable
	stack []string // contextual-state stack, top is the active state
	pos   int
	line  int
	col   int
	err   error // sticky after the first failure
}

// Tokenize starts a new scan of src beginning in initialState. An empty
// initialState means StateDefault. Each call returns an independent Stream,
// so the same (src, table) pair is restartable at will.
func (t *RuleTable) Tokenize(src, initialState string) *Stream {
	if initialState == "" {
		initialState = StateDefault
	}
	return &Stream{
		src:   src,
		table: t,
		stack: []string{initialState},
		line:  1,
		col:   1,
	}
}

// Next returns the next token. At end of input it returns the EOF sentinel
// and keeps returning it on every later call. After a failure the same
// *LexError is returned on every later call; invalid input is never skipped.
func (s *Stream) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}

	for {
		if s.pos >= len(s.src) {
			return Token{Kind: EOF, Start: s.pos, End: s.pos, Line: s.line, Column: s.col}, nil
		}

		state := s.stack[len(s.stack)-1]
		rule, length := s.best(state)
		if rule == nil {
			s.err = s.unknownSymbol()
			return Token{}, s.err
		}

		tok := Token{
			Kind:   rule.Kind,
			Text:   s.src[s.pos : s.pos+length],
			Start:  s.pos,
			End:    s.pos + length,
			Line:   s.line,
			Column: s.col,
		}
		s.consume(length)

		if err := s.applyTransition(rule, tok); err != nil {
			s.err = err
			return Token{}, s.err
		}

		if rule.Ignore {
			continue
		}
		return tok, nil
	}
}

// All materializes the remaining tokens, including the final EOF sentinel.
func (s *Stream) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens, nil
		}
	}
}

// best finds the winning rule at the current position: longest match first,
// then highest priority, then earliest declaration. Zero-length matches are
// rejected so the scan always makes forward progress.
func (s *Stream) best(state string) (*compiledRule, int) {
	var best *compiledRule
	bestLen := 0
	for _, r := range s.table.active(state) {
		n := r.m.match(s.src, s.pos)
		if n <= 0 {
			continue
		}
		if best == nil || n > bestLen || (n == bestLen && r.Priority > best.Priority) {
			best = r
			bestLen = n
		}
	}
	return best, bestLen
}

// consume advances the position over n bytes, tracking line and column across
// embedded newlines.
func (s *Stream) consume(n int) {
	for i := s.pos; i < s.pos+n; i++ {
		if s.src[i] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.pos += n
}

func (s *Stream) applyTransition(rule *compiledRule, tok Token) error {
	switch rule.transition.op {
	case transPush:
		s.stack = append(s.stack, rule.transition.state)
	case transPop:
		if len(s.stack) == 1 {
			return &LexError{
				Message: fmt.Sprintf("rule %s pops the initial state", rule.Kind),
				Offset:  tok.Start,
				Line:    tok.Line,
				Column:  tok.Column,
				Text:    tok.Text,
			}
		}
		s.stack = s.stack[:len(s.stack)-1]
	case transSwitch:
		s.stack[len(s.stack)-1] = rule.transition.state
	}
	return nil
}

func (s *Stream) unknownSymbol() *LexError {
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	offending := s.src[s.pos : s.pos+size]
	return &LexError{
		Message: fmt.Sprintf("no rule matches %q in state %q", offending, s.stack[len(s.stack)-1]),
		Offset:  s.pos,
		Line:    s.line,
		Column:  s.col,
		Text:    offending,
	}
}
