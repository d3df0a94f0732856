package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Snackmonger/lexkit/grammar"
	"github.com/Snackmonger/lexkit/lexer"
)

var rootCmd = &cobra.Command{
	Use:   "lexkit",
	Short: "Rule-based tokenizer toolkit",
	Long:  "lexkit tokenizes text against a YAML-declared rule table and provides the cursor primitives hand-written parsers are built from.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("grammar", "g", "", "Grammar file (YAML)")
	rootCmd.PersistentFlags().String("state", "", "Initial lexer state override")

	_ = viper.BindPFlag("grammar", rootCmd.PersistentFlags().Lookup("grammar"))
	_ = viper.BindPFlag("state", rootCmd.PersistentFlags().Lookup("state"))
}

func initConfig() {
	viper.SetEnvPrefix("LEXKIT")
	viper.AutomaticEnv()
}

// loadGrammar reads and compiles the grammar named by --grammar / LEXKIT_GRAMMAR,
// returning the table and the initial state to scan in.
func loadGrammar() (*lexer.RuleTable, string, error) {
	path := viper.GetString("grammar")
	if path == "" {
		return nil, "", fmt.Errorf("no grammar file given (use --grammar)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading grammar: %w", err)
	}
	table, initial, err := grammar.Load(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	if s := viper.GetString("state"); s != "" {
		initial = s
	}
	return table, initial, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
