// Package parser provides the cursor primitives a hand-written
// recursive-descent parser is built from: lookahead, expectation,
// backtracking, and structured errors over a token sequence produced by the
// lexer package.
//
// The package imposes no grammar. A grammar function is an ordinary Go
// function that takes a *Cursor, consumes tokens with Expect and Match, and
// returns whatever result type the caller defines:
//
//	func parsePair(c *parser.Cursor) (Pair, error) {
//	    key, err := c.Expect("IDENT")
//	    if err != nil {
//	        return Pair{}, err
//	    }
//	    if _, err := c.Expect("EQUALS"); err != nil {
//	        return Pair{}, err
//	    }
//	    val, err := c.ExpectAny("STRING", "NUMBER")
//	    if err != nil {
//	        return Pair{}, err
//	    }
//	    return Pair{Key: key.Text, Value: val.Text}, nil
//	}
//
// Alternation is backtracking with Checkpoint and Restore: save a mark, try
// one alternative, restore on failure and try the next. When every
// alternative fails, Furthest picks the most informative error to report.
package parser
