package diag

import "fmt"

// SyntaxError reports input that does not form a valid program, whether
// rejected by the grammar or by structural validation during conversion.
// Both surface as the same kind; Code distinguishes them for tooling.
type SyntaxError struct {
	Diagnostic Diagnostic
}

// NewSyntaxError builds a syntax error for the given stage.
func NewSyntaxError(stage Stage, code Code, msg string, span Span) *SyntaxError {
	return &SyntaxError{
		Diagnostic: Diagnostic{
			Stage:    stage,
			Severity: SeverityError,
			Code:     code,
			Message:  msg,
			Span:     span,
		},
	}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	d := e.Diagnostic
	if d.Span.IsValid() {
		return fmt.Sprintf("syntax error at %s: %s", d.Span, d.Message)
	}
	return fmt.Sprintf("syntax error: %s", d.Message)
}

// LiteralError reports a numeric literal that cannot be decoded, either
// from malformed digits or from overflow.
type LiteralError struct {
	Diagnostic Diagnostic
}

// NewLiteralError builds a literal error.
func NewLiteralError(code Code, msg string, span Span) *LiteralError {
	return &LiteralError{
		Diagnostic: Diagnostic{
			Stage:    StageConverter,
			Severity: SeverityError,
			Code:     code,
			Message:  msg,
			Span:     span,
		},
	}
}

// Error implements the error interface.
func (e *LiteralError) Error() string {
	d := e.Diagnostic
	if d.Span.IsValid() {
		return fmt.Sprintf("literal error at %s: %s", d.Span, d.Message)
	}
	return fmt.Sprintf("literal error: %s", d.Message)
}
