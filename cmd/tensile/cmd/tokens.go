package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(args)
	if err != nil {
		return err
	}

	lx := lexer.New(src)
	lx.SetFilename(filename)

	for {
		tok := lx.NextToken()
		if tok.Type == lexer.EOF {
			return nil
		}
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Raw)
	}
}
