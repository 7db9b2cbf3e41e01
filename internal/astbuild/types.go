package astbuild

import (
	"fmt"

	"github.com/tensile-lang/tensile-lang/internal/ast"
	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/diag"
	"github.com/tensile-lang/tensile-lang/internal/ir"
)

func (c *Converter) convertQualifiedType(n *cst.Node) (*ast.QualifiedType, error) {
	qualLeaf := n.Child(0)
	baseNode := n.Child(1)
	if qualLeaf == nil || baseNode == nil {
		return nil, c.malformed(n, "missing qualifier or base type")
	}

	qualifier, ok := ir.LookupQualifier(qualLeaf.Tok.Raw)
	if !ok {
		return nil, c.syntaxError(diag.CodeSyntaxUnexpectedToken,
			fmt.Sprintf("unknown type qualifier %q", qualLeaf.Tok.Raw), qualLeaf.Tok.Span)
	}

	base, err := c.convertType(baseNode)
	if err != nil {
		return nil, err
	}

	return ast.NewQualifiedType(qualifier, base, n.Span()), nil
}

func (c *Converter) convertType(n *cst.Node) (ast.Type, error) {
	switch n.Kind {
	case cst.KindNumericalType:
		return c.convertNumericalType(n)
	case cst.KindIndexType:
		return c.convertIndexType(n)
	case cst.KindTupleType:
		return c.convertTupleType(n)
	default:
		return nil, c.malformed(n, "not a type production")
	}
}

// convertNumericalType converts "name" or "name[shape]". The spelling
// resolves to a core data type when it names one, otherwise to a template
// data type bound in the enclosing declaration scope.
func (c *Converter) convertNumericalType(n *cst.Node) (ast.Type, error) {
	nameLeaf := n.Child(0)
	if nameLeaf == nil {
		return nil, c.malformed(n, "missing type name")
	}

	dataType := c.resolveDataType(nameLeaf)

	var shape []ast.Expr
	if shapeNode := n.FirstOfKind(cst.KindShape); shapeNode != nil {
		shape = make([]ast.Expr, 0, len(shapeNode.Children))
		for _, dim := range shapeNode.Children {
			expr, err := c.convertExpression(dim)
			if err != nil {
				return nil, err
			}
			shape = append(shape, expr)
		}
	}

	return ast.NewNumericalType(dataType, shape, n.Span()), nil
}

// resolveDataType maps a type name leaf to its element data type.
func (c *Converter) resolveDataType(nameLeaf *cst.Node) ast.DataType {
	spelling := nameLeaf.Tok.Raw
	if core, ok := ir.LookupCoreDataType(spelling); ok {
		return ast.NewCoreType(core, nameLeaf.Tok.Span)
	}
	return ast.NewTemplateDataType(c.lookupOrBindTemplate(spelling), nameLeaf.Tok.Span)
}

func (c *Converter) convertIndexType(n *cst.Node) (ast.Type, error) {
	if len(n.Children) < 2 {
		return nil, c.malformed(n, "missing range bounds")
	}

	lower, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}
	upper, err := c.convertExpression(n.Children[1])
	if err != nil {
		return nil, err
	}

	var stride ast.Expr
	if len(n.Children) > 2 {
		stride, err = c.convertExpression(n.Children[2])
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIndexType(lower, upper, stride, n.Span()), nil
}

func (c *Converter) convertTupleType(n *cst.Node) (ast.Type, error) {
	if len(n.Children) == 0 {
		return nil, c.malformed(n, "tuple type requires at least one element")
	}

	types := make([]ast.Type, 0, len(n.Children))
	for _, child := range n.Children {
		typ, err := c.convertType(child)
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
	}

	return ast.NewTupleType(types, n.Span()), nil
}

// convertTemplateArgument converts a call-site template argument, which
// must name an element type without a shape.
func (c *Converter) convertTemplateArgument(n *cst.Node) (ast.DataType, error) {
	if n.Kind != cst.KindNumericalType {
		return nil, c.syntaxError(diag.CodeSyntaxUnexpectedToken,
			"template argument must name an element type", n.Span())
	}
	if shapeNode := n.FirstOfKind(cst.KindShape); shapeNode != nil {
		return nil, c.syntaxError(diag.CodeSyntaxUnexpectedToken,
			"template argument cannot carry a shape", n.Span())
	}

	nameLeaf := n.Child(0)
	if nameLeaf == nil {
		return nil, c.malformed(n, "missing type name")
	}
	return c.resolveDataType(nameLeaf), nil
}
