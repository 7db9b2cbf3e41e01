package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tensile-lang/tensile-lang/internal/astbuild"
	"github.com/tensile-lang/tensile-lang/internal/diag"
	"github.com/tensile-lang/tensile-lang/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and convert a source file, reporting diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename, src, err := readSource(args)
	if err != nil {
		return err
	}

	root, err := parser.Parse(src, parser.WithFilename(filename))
	if err == nil {
		_, err = astbuild.Convert(root)
	}
	if err == nil {
		fmt.Printf("%s: ok\n", filename)
		return nil
	}

	formatter := diag.NewFormatter()
	formatter.SetSource(filename, src)
	if d, ok := extractDiagnostic(err); ok {
		fmt.Fprint(os.Stderr, formatter.Format(d))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}

	// The diagnostic is already printed; surface only the exit status.
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return err
}

func extractDiagnostic(err error) (diag.Diagnostic, bool) {
	var syntaxErr *diag.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Diagnostic, true
	}
	var literalErr *diag.LiteralError
	if errors.As(err, &literalErr) {
		return literalErr.Diagnostic, true
	}
	return diag.Diagnostic{}, false
}
