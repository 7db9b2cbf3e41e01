package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, stmt := range n.Statements {
			Walk(stmt, fn)
		}

	case *Import:
		// leaf

	case *Procedure:
		for _, tmpl := range n.Templates {
			Walk(tmpl, fn)
		}
		for _, idx := range n.Indices {
			Walk(idx, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
		for _, stmt := range n.Body {
			Walk(stmt, fn)
		}

	case *Operation:
		for _, tmpl := range n.Templates {
			Walk(tmpl, fn)
		}
		for _, idx := range n.Indices {
			Walk(idx, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
		if n.Return != nil {
			Walk(n.Return, fn)
		}
		for _, stmt := range n.Body {
			Walk(stmt, fn)
		}

	case *Argument:
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *QualifiedType:
		if n.Base != nil {
			Walk(n.Base, fn)
		}

	case *DeclarationStatement:
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ExpressionStatement:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		Walk(n.Right, fn)

	case *SelectionStatement:
		Walk(n.Condition, fn)
		for _, stmt := range n.TrueBody {
			Walk(stmt, fn)
		}
		for _, stmt := range n.FalseBody {
			Walk(stmt, fn)
		}

	case *ForAllStatement:
		Walk(n.Index, fn)
		for _, stmt := range n.Body {
			Walk(stmt, fn)
		}

	case *ReturnStatement:
		Walk(n.Value, fn)

	case *NumericalType:
		Walk(n.DataType, fn)
		for _, dim := range n.Shape {
			Walk(dim, fn)
		}

	case *IndexType:
		Walk(n.Lower, fn)
		Walk(n.Upper, fn)
		if n.Stride != nil {
			Walk(n.Stride, fn)
		}

	case *TupleType:
		for _, t := range n.Types {
			Walk(t, fn)
		}

	case *CoreType, *TemplateDataType:
		// leaves

	case *IntLiteral, *FloatLiteral, *ComplexLiteral, *IdentifierExpr:
		// leaves

	case *TupleExpr:
		for _, e := range n.Exprs {
			Walk(e, fn)
		}

	case *TupleAccessExpr:
		Walk(n.Tuple, fn)

	case *ArrayAccessExpr:
		Walk(n.Array, fn)
		for _, idx := range n.Indices {
			Walk(idx, fn)
		}

	case *FunctionExpr:
		Walk(n.Function, fn)
		for _, t := range n.TemplateTypes {
			Walk(t, fn)
		}
		for _, idx := range n.Indices {
			Walk(idx, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *UnaryExpr:
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *TernaryExpr:
		Walk(n.Condition, fn)
		Walk(n.True, fn)
		Walk(n.False, fn)
	}
}
