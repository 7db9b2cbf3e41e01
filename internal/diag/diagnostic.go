package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer     Stage = "lexer"
	StageParser    Stage = "parser"
	StageConverter Stage = "converter"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Grammar-level errors
	CodeSyntaxUnexpectedToken Code = "SYNTAX_UNEXPECTED_TOKEN"
	CodeSyntaxIllegalRune     Code = "SYNTAX_ILLEGAL_RUNE"

	// Structural errors raised during CST to AST conversion
	CodeSyntaxUnnamedArgument Code = "SYNTAX_UNNAMED_ARGUMENT"
	CodeSyntaxMissingReturn   Code = "SYNTAX_MISSING_RETURN_TYPE"
	CodeSyntaxInvalidKeyword  Code = "SYNTAX_INVALID_DECL_KEYWORD"
	CodeSyntaxMalformedNode   Code = "SYNTAX_MALFORMED_NODE"

	// Literal decoding errors
	CodeLiteralMalformed Code = "LITERAL_MALFORMED"
	CodeLiteralOverflow  Code = "LITERAL_OVERFLOW"
)

// Span represents a location in source code.
type Span struct {
	Filename  string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
	Start     int
	End       int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a front-end diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Notes    []string
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}
