package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tensile",
	Short: "Tensile language front end",
	Long: `Tensile is a tensor computation language. This tool drives its
front end: lexing, parsing, and conversion to the abstract syntax tree.

Commands:
  tokens   - dump the token stream of a source file
  parse    - parse a source file and print its syntax tree
  check    - parse and convert a source file, reporting diagnostics`,
}

func Execute() error {
	return rootCmd.Execute()
}

// readSource loads one source file named by the command arguments.
func readSource(args []string) (filename, src string, err error) {
	filename = args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", "", err
	}
	return filename, string(data), nil
}
