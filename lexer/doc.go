// Package lexer implements a rule-based tokenizer.
//
// A lexer is declared as a flat list of rules, each pairing a token kind with
// a matcher (an exact literal or an RE2 pattern), a priority, and optional
// state scoping. The rules are compiled once into an immutable RuleTable and
// the table is then used to scan any number of source texts:
//
//	table, err := lexer.Compile(
//	    lexer.Literal("IF", "if").WithPriority(10),
//	    lexer.Pattern("IDENT", "[a-z_][a-z0-9_]*"),
//	    lexer.Pattern("WS", "[ \t\n]+").Ignored(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tokens, err := table.Tokenize("if x", "").All()
//
// At each position the engine picks the longest match; length ties go to the
// rule with the highest priority, and priority ties to the rule declared
// first. A position no rule matches is a *LexError — invalid input is never
// skipped silently.
//
// Rules may be scoped to named states and may push, pop, or switch the state
// stack when they match, which supports contextual sub-languages such as
// string interiors. Scanning is lazy: Stream.Next produces one token at a
// time, and Stream.All materializes the rest through the final EOF sentinel.
package lexer
