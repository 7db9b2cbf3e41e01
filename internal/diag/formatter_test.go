package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat_WithSnippet(t *testing.T) {
	f := NewFormatter()
	f.SetSource("main.tl", "proc foo() {\n\tbad token here\n}\n")

	d := Diagnostic{
		Stage:    StageParser,
		Severity: SeverityError,
		Code:     CodeSyntaxUnexpectedToken,
		Message:  "expected ';', found 'token'",
		Span: Span{
			Filename:  "main.tl",
			Line:      2,
			Column:    6,
			EndLine:   2,
			EndColumn: 11,
		},
	}

	out := f.Format(d)
	require.Contains(t, out, "error")
	require.Contains(t, out, string(CodeSyntaxUnexpectedToken))
	require.Contains(t, out, "expected ';', found 'token'")
	require.Contains(t, out, d.Span.String())
	require.Contains(t, out, "bad token here")
	require.Contains(t, out, "^^^^^")
}

func TestFormat_WithoutSpan(t *testing.T) {
	f := NewFormatter()

	out := f.Format(Diagnostic{
		Severity: SeverityError,
		Message:  "something went wrong",
	})
	require.Contains(t, out, "something went wrong")
	require.NotContains(t, out, "-->")
}

func TestFormat_UnknownFileSkipsSnippet(t *testing.T) {
	f := NewFormatter()

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "oops",
		Span:     Span{Filename: "missing-file.tl", Line: 1, Column: 1},
	}

	out := f.Format(d)
	require.Contains(t, out, "oops")
	require.Equal(t, 2, strings.Count(out, "\n"), "header and span lines only")
}

func TestFormat_Notes(t *testing.T) {
	f := NewFormatter()

	d := Diagnostic{Severity: SeverityError, Message: "base"}.
		WithNote("see the declaration above")

	out := f.Format(d)
	require.Contains(t, out, "note: ")
	require.Contains(t, out, "see the declaration above")
}

func TestSpanString(t *testing.T) {
	s := Span{Filename: "a.tl", Line: 3, Column: 7}
	require.Equal(t, "a.tl:3:7", s.String())

	s = Span{Line: 3, Column: 7}
	require.Equal(t, "3:7", s.String())
}
