package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tensile-lang/tensile-lang/internal/astbuild"
	"github.com/tensile-lang/tensile-lang/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(args)
	if err != nil {
		return err
	}

	root, err := parser.Parse(src, parser.WithFilename(filename))
	if err != nil {
		return err
	}

	module, err := astbuild.Convert(root)
	if err != nil {
		return err
	}

	fmt.Print(module.PrettyPrint())
	return nil
}
