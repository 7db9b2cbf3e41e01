package diag

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter renders diagnostics with source snippets and caret underlines.
type Formatter struct {
	sourceCache map[string]string

	headerStyle  lipgloss.Style
	warnStyle    lipgloss.Style
	noteStyle    lipgloss.Style
	gutterStyle  lipgloss.Style
	caretStyle   lipgloss.Style
	messageStyle lipgloss.Style
}

// NewFormatter creates a new diagnostic formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		sourceCache:  make(map[string]string),
		headerStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		noteStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		gutterStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		caretStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		messageStyle: lipgloss.NewStyle().Bold(true),
	}
}

// SetSource registers source text for a filename so snippets can be
// rendered without touching the filesystem (used for in-memory sources).
func (f *Formatter) SetSource(filename, src string) {
	f.sourceCache[filename] = src
}

// loadSource loads source code for a file, caching the result.
func (f *Formatter) loadSource(filename string) (string, bool) {
	if filename == "" {
		return "", false
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, true
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", false
	}
	f.sourceCache[filename] = string(data)
	return string(data), true
}

// Format renders a diagnostic, with a source snippet when the span points
// into known source.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder

	sev := f.headerStyle
	switch d.Severity {
	case SeverityWarning:
		sev = f.warnStyle
	case SeverityNote:
		sev = f.noteStyle
	}

	b.WriteString(sev.Render(string(d.Severity)))
	if d.Code != "" {
		b.WriteString(sev.Render(fmt.Sprintf("[%s]", d.Code)))
	}
	b.WriteString(": ")
	b.WriteString(f.messageStyle.Render(d.Message))
	b.WriteString("\n")

	if d.Span.IsValid() {
		b.WriteString(f.gutterStyle.Render(" --> "))
		b.WriteString(d.Span.String())
		b.WriteString("\n")
		f.renderSnippet(&b, d.Span)
	}

	for _, note := range d.Notes {
		b.WriteString(f.noteStyle.Render("note: "))
		b.WriteString(note)
		b.WriteString("\n")
	}

	return b.String()
}

func (f *Formatter) renderSnippet(b *strings.Builder, span Span) {
	src, ok := f.loadSource(span.Filename)
	if !ok {
		return
	}

	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		return
	}
	line := lines[span.Line-1]

	gutter := fmt.Sprintf("%4d | ", span.Line)
	b.WriteString(f.gutterStyle.Render(gutter))
	b.WriteString(line)
	b.WriteString("\n")

	width := 1
	if span.EndLine == span.Line && span.EndColumn > span.Column {
		width = span.EndColumn - span.Column
	}
	pad := strings.Repeat(" ", len(gutter)+span.Column-1)
	b.WriteString(pad)
	b.WriteString(f.caretStyle.Render(strings.Repeat("^", width)))
	b.WriteString("\n")
}
