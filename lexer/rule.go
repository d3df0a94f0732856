package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// matcher attempts a match anchored at pos, returning the matched length in
// bytes or -1 if there is no match. A zero-length match is reported as 0 and
// is never accepted by the scan loop.
type matcher interface {
	match(src string, pos int) int
}

type literalMatcher string

func (m literalMatcher) match(src string, pos int) int {
	if strings.HasPrefix(src[pos:], string(m)) {
		return len(m)
	}
	return -1
}

type patternMatcher struct {
	re *regexp.Regexp // compiled with a \A anchor
}

func (m *patternMatcher) match(src string, pos int) int {
	loc := m.re.FindStringIndex(src[pos:])
	if loc == nil {
		return -1
	}
	return loc[1]
}

type transitionOp int

const (
	transNone transitionOp = iota
	transPush
	transPop
	transSwitch
)

type transition struct {
	op    transitionOp
	state string
}

// Rule declares how to recognize one token kind: a matcher (exact literal or
// RE2 pattern), a priority for length ties, and optional state scoping and a
// state transition. Rules are plain values; modifiers return a copy, so a
// declaration reads as a chain:
//
//	lexer.Literal("IF", "if").WithPriority(10)
//	lexer.Pattern("STR_OPEN", `"`).PushState("string")
type Rule struct {
	Kind     string
	Priority int
	Ignore   bool // matched but never emitted (whitespace, comments)

	literal    string
	pattern    string
	isPattern  bool
	states     []string // states the rule is active in; empty = all states
	transition transition
}

// Literal declares a rule matching an exact string.
func Literal(kind, text string) Rule {
	return Rule{Kind: kind, literal: text}
}

// Pattern declares a rule matching an RE2 regular expression. The expression
// is anchored at the scan position; a leading \A or ^ is unnecessary.
func Pattern(kind, expr string) Rule {
	return Rule{Kind: kind, pattern: expr, isPattern: true}
}

// WithPriority sets the rule's priority. Higher wins on equal match length.
func (r Rule) WithPriority(p int) Rule {
	r.Priority = p
	return r
}

// Ignored marks the rule as matched-but-not-emitted.
func (r Rule) Ignored() Rule {
	r.Ignore = true
	return r
}

// In restricts the rule to the named states. A rule with no In call is active
// in every state.
func (r Rule) In(states ...string) Rule {
	r.states = append([]string(nil), states...)
	return r
}

// PushState makes a match push the named state onto the state stack.
func (r Rule) PushState(state string) Rule {
	r.transition = transition{op: transPush, state: state}
	return r
}

// PopState makes a match pop the current state, returning to the previous one.
func (r Rule) PopState() Rule {
	r.transition = transition{op: transPop}
	return r
}

// SwitchState makes a match replace the current state with the named one.
func (r Rule) SwitchState(state string) Rule {
	r.transition = transition{op: transSwitch, state: state}
	return r
}

type compiledRule struct {
	Rule
	m     matcher
	index int // declaration order, tie-break of last resort
}

// RuleTable is a compiled, immutable rule set. A table is built once with
// Compile and may back any number of Streams, concurrently.
type RuleTable struct {
	rules    []compiledRule
	byState  map[string][]*compiledRule // scoped ∪ unscoped, declaration order
	unscoped []*compiledRule
}

// Compile validates and compiles the declared rules into a RuleTable.
// Rules must name a kind and a non-empty matcher; pattern rules must compile
// as RE2; push and switch transitions must target a state some rule is
// scoped to. StateDefault is always a valid target: the unscoped rules are
// reachable there, and jumping back to it is the usual round trip of the
// named-switch model.
func Compile(rules ...Rule) (*RuleTable, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules declared")
	}

	t := &RuleTable{
		rules:   make([]compiledRule, len(rules)),
		byState: make(map[string][]*compiledRule),
	}

	stateNames := map[string]bool{StateDefault: true}
	for _, r := range rules {
		for _, s := range r.states {
			stateNames[s] = true
		}
	}

	for i, r := range rules {
		if r.Kind == "" {
			return nil, fmt.Errorf("rule %d: missing kind", i+1)
		}
		if r.Kind == EOF {
			return nil, fmt.Errorf("rule %d: kind %q is reserved", i+1, EOF)
		}

		var m matcher
		if r.isPattern {
			re, err := regexp.Compile(`\A(?:` + r.pattern + `)`)
			if err != nil {
				return nil, fmt.Errorf("rule %d (%s): invalid pattern: %w", i+1, r.Kind, err)
			}
			m = &patternMatcher{re: re}
		} else {
			if r.literal == "" {
				return nil, fmt.Errorf("rule %d (%s): empty literal", i+1, r.Kind)
			}
			m = literalMatcher(r.literal)
		}

		switch r.transition.op {
		case transPush, transSwitch:
			if !stateNames[r.transition.state] {
				return nil, fmt.Errorf("rule %d (%s): transition targets state %q, which no rule is scoped to",
					i+1, r.Kind, r.transition.state)
			}
		}

		t.rules[i] = compiledRule{Rule: r, m: m, index: i}
	}

	for i := range t.rules {
		cr := &t.rules[i]
		if len(cr.states) == 0 {
			t.unscoped = append(t.unscoped, cr)
			continue
		}
		for _, s := range cr.states {
			t.byState[s] = append(t.byState[s], cr)
		}
	}

	// Merge unscoped rules into each named state, restoring declaration order.
	for s, scoped := range t.byState {
		merged := make([]*compiledRule, 0, len(scoped)+len(t.unscoped))
		merged = append(merged, scoped...)
		merged = append(merged, t.unscoped...)
		sortByIndex(merged)
		t.byState[s] = merged
	}

	return t, nil
}

// active returns the rules active in the given state, in declaration order.
func (t *RuleTable) active(state string) []*compiledRule {
	if rs, ok := t.byState[state]; ok {
		return rs
	}
	return t.unscoped
}

func sortByIndex(rs []*compiledRule) {
	// Insertion sort; rule lists are short and nearly ordered already.
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j-1].index > rs[j].index; j-- {
			rs[j-1], rs[j] = rs[j], rs[j-1]
		}
	}
}
