// Package grammar loads lexer rule tables from YAML grammar files.
//
// A grammar file names an optional initial state and a list of rules:
//
//	initial: main
//	rules:
//	  - kind: IF
//	    literal: if
//	    priority: 10
//	  - kind: IDENT
//	    pattern: "[a-z_][a-z0-9_]*"
//	  - kind: WS
//	    pattern: "[ \t\n]+"
//	    ignore: true
//	  - kind: STR_OPEN
//	    literal: '"'
//	    push: string
//	  - kind: STR_TEXT
//	    pattern: '[^"]+'
//	    states: [string]
//	  - kind: STR_CLOSE
//	    literal: '"'
//	    states: [string]
//	    priority: 10
//	    pop: true
//
// The lexer engine itself never reads files; this package exists for the
// tooling around it.
package grammar

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Snackmonger/lexkit/lexer"
)

// File is the decoded form of a grammar file.
type File struct {
	Initial string     `yaml:"initial"`
	Rules   []RuleSpec `yaml:"rules"`
}

// RuleSpec declares one rule. Exactly one of Literal and Pattern must be set,
// and at most one of Push, Pop, and Switch.
type RuleSpec struct {
	Kind     string   `yaml:"kind"`
	Literal  string   `yaml:"literal"`
	Pattern  string   `yaml:"pattern"`
	Priority int      `yaml:"priority"`
	Ignore   bool     `yaml:"ignore"`
	States   []string `yaml:"states"`
	Push     string   `yaml:"push"`
	Pop      bool     `yaml:"pop"`
	Switch   string   `yaml:"switch"`
}

// Parse decodes a YAML grammar file without compiling it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing grammar: %w", err)
	}
	return &f, nil
}

// Compile turns a decoded grammar file into a rule table and its initial
// state name ("" when the file names none).
func Compile(f *File) (*lexer.RuleTable, string, error) {
	if len(f.Rules) == 0 {
		return nil, "", fmt.Errorf("grammar declares no rules")
	}
	rules := make([]lexer.Rule, 0, len(f.Rules))
	for i, spec := range f.Rules {
		r, err := spec.rule()
		if err != nil {
			return nil, "", fmt.Errorf("rule %d (%s): %w", i+1, spec.Kind, err)
		}
		rules = append(rules, r)
	}
	table, err := lexer.Compile(rules...)
	if err != nil {
		return nil, "", err
	}
	return table, f.Initial, nil
}

// Load is Parse followed by Compile.
func Load(data []byte) (*lexer.RuleTable, string, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, "", err
	}
	return Compile(f)
}

func (s RuleSpec) rule() (lexer.Rule, error) {
	var r lexer.Rule
	switch {
	case s.Literal != "" && s.Pattern != "":
		return r, fmt.Errorf("both literal and pattern given")
	case s.Literal != "":
		r = lexer.Literal(s.Kind, s.Literal)
	case s.Pattern != "":
		r = lexer.Pattern(s.Kind, s.Pattern)
	default:
		return r, fmt.Errorf("neither literal nor pattern given")
	}

	if s.Priority != 0 {
		r = r.WithPriority(s.Priority)
	}
	if s.Ignore {
		r = r.Ignored()
	}
	if len(s.States) > 0 {
		r = r.In(s.States...)
	}

	transitions := 0
	if s.Push != "" {
		r = r.PushState(s.Push)
		transitions++
	}
	if s.Pop {
		r = r.PopState()
		transitions++
	}
	if s.Switch != "" {
		r = r.SwitchState(s.Switch)
		transitions++
	}
	if transitions > 1 {
		return r, fmt.Errorf("at most one of push, pop, and switch may be set")
	}
	return r, nil
}
