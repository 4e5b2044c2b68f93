package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alif-lang/als/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize FILE",
	Short: "Tokenize an Alif source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tokens, errs := lexer.Tokenize(string(data))
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%-14s %3d:%-3d - %3d:%-3d %q\n",
			tok.Kind, tok.Range.Start.Line, tok.Range.Start.Column,
			tok.Range.End.Line, tok.Range.End.Column, tok.Text)
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d:%d: %s\n", e.Position.Line, e.Position.Column, e.Message)
		}
		return fmt.Errorf("%d lexer error(s)", len(errs))
	}
	return nil
}
