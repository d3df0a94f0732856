package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Snackmonger/lexkit/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a file",
	Long:  "Tokenize a file against the grammar and print one token per line (position, kind, text).",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().Bool("eof", false, "Also print the EOF sentinel")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	table, initial, err := loadGrammar()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	showEOF, _ := cmd.Flags().GetBool("eof")

	src := string(data)
	stream := table.Tokenize(src, initial)
	for {
		tok, err := stream.Next()
		if err != nil {
			var lexErr *lexer.LexError
			if errors.As(err, &lexErr) {
				if excerpt := lexErr.Excerpt(src); excerpt != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), excerpt)
				}
			}
			return err
		}
		if tok.IsEOF() {
			if showEOF {
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", tok.Line, tok.Column, lexer.EOF)
			}
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Text)
	}
}
