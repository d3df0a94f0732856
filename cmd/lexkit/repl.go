package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/Snackmonger/lexkit/lexer"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines interactively",
	Long:  "Read lines, tokenize each against the grammar, and print the tokens. Lex errors are reported with a caret excerpt and do not end the session.",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	table, initial, err := loadGrammar()
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		line, err := ln.Prompt("lex> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		tokens, err := table.Tokenize(line, initial).All()
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
			var lexErr *lexer.LexError
			if errors.As(err, &lexErr) {
				if excerpt := lexErr.Excerpt(line); excerpt != "" {
					fmt.Fprintln(cmd.OutOrStdout(), "\t"+strings.ReplaceAll(excerpt, "\n", "\n\t"))
				}
			}
			continue
		}
		for _, tok := range tokens {
			if tok.IsEOF() {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
	}
}
