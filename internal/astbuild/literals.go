package astbuild

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tensile-lang/tensile-lang/internal/ast"
	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/diag"
)

func (c *Converter) convertIntLiteral(n *cst.Node) (ast.Expr, error) {
	return c.decodeInt(n)
}

// decodeInt decodes a decimal, binary, octal, or hexadecimal integer
// token. Base prefixes are case-insensitive.
func (c *Converter) decodeInt(n *cst.Node) (*ast.IntLiteral, error) {
	raw := n.Tok.Raw
	value, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return nil, c.literalError(raw, "integer", err, n)
	}
	return ast.NewIntLiteral(value, n.Span()), nil
}

func (c *Converter) convertFloatLiteral(n *cst.Node) (ast.Expr, error) {
	raw := n.Tok.Raw
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, c.literalError(raw, "float", err, n)
	}
	return ast.NewFloatLiteral(value, n.Span()), nil
}

// convertComplexLiteral decodes a pure-imaginary literal: a numeric body
// with a trailing 'j' or 'J'. The real part is always zero.
func (c *Converter) convertComplexLiteral(n *cst.Node) (ast.Expr, error) {
	raw := n.Tok.Raw
	body := strings.TrimSuffix(strings.TrimSuffix(raw, "j"), "J")

	imag, err := strconv.ParseFloat(body, 64)
	if err != nil {
		// Prefixed integer bodies such as 0x2j are not valid floats.
		iv, ierr := strconv.ParseInt(body, 0, 64)
		if ierr != nil {
			return nil, c.literalError(raw, "complex", err, n)
		}
		imag = float64(iv)
	}

	return ast.NewComplexLiteral(complex(0, imag), n.Span()), nil
}

// literalError maps a strconv failure onto the diagnostic taxonomy:
// out-of-range values overflow, everything else is malformed.
func (c *Converter) literalError(raw, what string, err error, n *cst.Node) error {
	code := diag.CodeLiteralMalformed
	if errors.Is(err, strconv.ErrRange) {
		code = diag.CodeLiteralOverflow
	}
	return diag.NewLiteralError(code,
		fmt.Sprintf("invalid %s literal %q", what, raw), toDiagSpan(n.Span()))
}
