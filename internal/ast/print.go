package ast

import (
	"fmt"
	"strings"
)

// PrettyPrint returns a human-readable tree rendering of the module, one
// node per line with two-space indentation.
func (m *Module) PrettyPrint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Module (%d statements)\n", len(m.Statements))
	for _, stmt := range m.Statements {
		printNode(&b, stmt, 1)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printStmts(b *strings.Builder, label string, stmts []Stmt, depth int) {
	if len(stmts) == 0 {
		return
	}
	indent(b, depth)
	fmt.Fprintf(b, "%s:\n", label)
	for _, stmt := range stmts {
		printNode(b, stmt, depth+1)
	}
}

func printNode(b *strings.Builder, node Node, depth int) {
	indent(b, depth)

	switch n := node.(type) {
	case *Import:
		fmt.Fprintf(b, "Import %s\n", n.Name.Hint())

	case *Procedure:
		fmt.Fprintf(b, "Procedure %s\n", n.Name.Hint())
		printSignature(b, n.Templates, n.Indices, n.Args, depth+1)
		printStmts(b, "body", n.Body, depth+1)

	case *Operation:
		fmt.Fprintf(b, "Operation %s\n", n.Name.Hint())
		printSignature(b, n.Templates, n.Indices, n.Args, depth+1)
		if n.Return != nil {
			indent(b, depth+1)
			b.WriteString("return type:\n")
			printNode(b, n.Return, depth+2)
		}
		printStmts(b, "body", n.Body, depth+1)

	case *Argument:
		fmt.Fprintf(b, "Argument %s\n", n.Name.Hint())
		printNode(b, n.Type, depth+1)

	case *QualifiedType:
		fmt.Fprintf(b, "QualifiedType %s\n", n.Qualifier)
		printNode(b, n.Base, depth+1)

	case *DeclarationStatement:
		fmt.Fprintf(b, "Declaration %s\n", n.Name.Hint())
		printNode(b, n.Type, depth+1)
		if n.Value != nil {
			printNode(b, n.Value, depth+1)
		}

	case *ExpressionStatement:
		b.WriteString("ExpressionStatement\n")
		if n.Left != nil {
			indent(b, depth+1)
			b.WriteString("target:\n")
			printNode(b, n.Left, depth+2)
		}
		printNode(b, n.Right, depth+1)

	case *SelectionStatement:
		b.WriteString("Selection\n")
		printNode(b, n.Condition, depth+1)
		printStmts(b, "true", n.TrueBody, depth+1)
		printStmts(b, "false", n.FalseBody, depth+1)

	case *ForAllStatement:
		b.WriteString("ForAll\n")
		printNode(b, n.Index, depth+1)
		printStmts(b, "body", n.Body, depth+1)

	case *ReturnStatement:
		b.WriteString("Return\n")
		printNode(b, n.Value, depth+1)

	case *NumericalType:
		b.WriteString("NumericalType ")
		switch dt := n.DataType.(type) {
		case *CoreType:
			b.WriteString(string(dt.Core))
		case *TemplateDataType:
			b.WriteString(dt.Ident.String())
		}
		b.WriteString("\n")
		for _, dim := range n.Shape {
			printNode(b, dim, depth+1)
		}

	case *IndexType:
		b.WriteString("IndexType\n")
		printNode(b, n.Lower, depth+1)
		printNode(b, n.Upper, depth+1)
		if n.Stride != nil {
			printNode(b, n.Stride, depth+1)
		}

	case *TupleType:
		b.WriteString("TupleType\n")
		for _, t := range n.Types {
			printNode(b, t, depth+1)
		}

	case *CoreType:
		fmt.Fprintf(b, "CoreType %s\n", n.Core)

	case *TemplateDataType:
		fmt.Fprintf(b, "TemplateDataType %s\n", n.Ident)

	case *IntLiteral:
		fmt.Fprintf(b, "IntLiteral %d\n", n.Value)

	case *FloatLiteral:
		fmt.Fprintf(b, "FloatLiteral %g\n", n.Value)

	case *ComplexLiteral:
		fmt.Fprintf(b, "ComplexLiteral %g\n", n.Value)

	case *IdentifierExpr:
		fmt.Fprintf(b, "Identifier %s\n", n.Ident.Hint())

	case *TupleExpr:
		b.WriteString("Tuple\n")
		for _, e := range n.Exprs {
			printNode(b, e, depth+1)
		}

	case *TupleAccessExpr:
		fmt.Fprintf(b, "TupleAccess .%d\n", n.Index)
		printNode(b, n.Tuple, depth+1)

	case *ArrayAccessExpr:
		b.WriteString("ArrayAccess\n")
		printNode(b, n.Array, depth+1)
		for _, idx := range n.Indices {
			printNode(b, idx, depth+1)
		}

	case *FunctionExpr:
		b.WriteString("Call\n")
		printNode(b, n.Function, depth+1)
		for _, t := range n.TemplateTypes {
			printNode(b, t, depth+1)
		}
		for _, idx := range n.Indices {
			printNode(b, idx, depth+1)
		}
		for _, arg := range n.Args {
			printNode(b, arg, depth+1)
		}

	case *UnaryExpr:
		fmt.Fprintf(b, "Unary %s\n", n.Op)
		printNode(b, n.Operand, depth+1)

	case *BinaryExpr:
		fmt.Fprintf(b, "Binary %s\n", n.Op)
		printNode(b, n.Left, depth+1)
		printNode(b, n.Right, depth+1)

	case *TernaryExpr:
		b.WriteString("Ternary\n")
		printNode(b, n.Condition, depth+1)
		printNode(b, n.True, depth+1)
		printNode(b, n.False, depth+1)

	default:
		fmt.Fprintf(b, "%T\n", n)
	}
}

func printSignature(b *strings.Builder, templates []*TemplateDataType, indices []Expr, args []*Argument, depth int) {
	for _, tmpl := range templates {
		printNode(b, tmpl, depth)
	}
	for _, idx := range indices {
		printNode(b, idx, depth)
	}
	for _, arg := range args {
		printNode(b, arg, depth)
	}
}
