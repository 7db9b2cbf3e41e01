package astbuild

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensile-lang/tensile-lang/internal/ast"
	"github.com/tensile-lang/tensile-lang/internal/diag"
	"github.com/tensile-lang/tensile-lang/internal/ir"
	"github.com/tensile-lang/tensile-lang/internal/parser"
)

func convert(t *testing.T, src string) *ast.Module {
	t.Helper()
	root, err := parser.Parse(src)
	require.NoError(t, err)
	module, err := Convert(root)
	require.NoError(t, err)
	return module
}

func convertErr(t *testing.T, src string) error {
	t.Helper()
	root, err := parser.Parse(src)
	require.NoError(t, err)
	_, err = Convert(root)
	require.Error(t, err)
	return err
}

// onlyStmt returns the single top-level statement of src.
func onlyStmt(t *testing.T, src string) ast.Stmt {
	t.Helper()
	module := convert(t, src)
	require.Len(t, module.Statements, 1)
	return module.Statements[0]
}

// rhs returns the right-hand side of the single "x = expr;" statement.
func rhs(t *testing.T, src string) ast.Expr {
	t.Helper()
	stmt, ok := onlyStmt(t, src).(*ast.ExpressionStatement)
	require.True(t, ok, "expected expression statement")
	require.NotNil(t, stmt.Right)
	return stmt.Right
}

func requireCode(t *testing.T, err error, code diag.Code) {
	t.Helper()
	var syntaxErr *diag.SyntaxError
	if errors.As(err, &syntaxErr) {
		require.Equal(t, code, syntaxErr.Diagnostic.Code)
		return
	}
	var literalErr *diag.LiteralError
	require.ErrorAs(t, err, &literalErr)
	require.Equal(t, code, literalErr.Diagnostic.Code)
}

func TestConvert_EmptyModule(t *testing.T) {
	for _, src := range []string{"", "# a comment\n"} {
		module := convert(t, src)
		require.Empty(t, module.Statements, "src %q", src)
	}
}

func TestConvert_Import(t *testing.T) {
	stmt, ok := onlyStmt(t, "import foo.bar;").(*ast.Import)
	require.True(t, ok)
	require.Equal(t, "foo.bar", stmt.Name.Hint())
}

func TestConvert_ProcedureForms(t *testing.T) {
	tests := []struct {
		src       string
		templates int
		indices   int
	}{
		{"proc foo() { }", 0, 0},
		{"proc foo<T>() { }", 1, 0},
		{"proc foo[m]() { }", 0, 1},
		{"proc foo<T, U>[m, n]() { }", 2, 2},
	}

	for _, tt := range tests {
		proc, ok := onlyStmt(t, tt.src).(*ast.Procedure)
		require.True(t, ok, "src %q", tt.src)
		require.Equal(t, "foo", proc.Name.Hint(), "src %q", tt.src)
		require.Len(t, proc.Templates, tt.templates, "src %q", tt.src)
		require.Len(t, proc.Indices, tt.indices, "src %q", tt.src)
	}
}

func TestConvert_OperationForms(t *testing.T) {
	op, ok := onlyStmt(t, "op foo<T>[m](input int32 x) -> output int32 { }").(*ast.Operation)
	require.True(t, ok)
	require.Equal(t, "foo", op.Name.Hint())
	require.Len(t, op.Templates, 1)
	require.Len(t, op.Indices, 1)
	require.Len(t, op.Args, 1)
	require.NotNil(t, op.Return)
	require.Equal(t, ir.QualifierOutput, op.Return.Qualifier)
}

func TestConvert_ShapedReturnType(t *testing.T) {
	op := onlyStmt(t, "op foo(input int32[n, m] x) -> output int32[n, m] { }").(*ast.Operation)

	argType := op.Args[0].Type.Base.(*ast.NumericalType)
	retType := op.Return.Base.(*ast.NumericalType)
	require.Equal(t, ir.Int32, argType.DataType.(*ast.CoreType).Core)
	require.Equal(t, ir.Int32, retType.DataType.(*ast.CoreType).Core)
	require.Len(t, argType.Shape, 2)
	require.Len(t, retType.Shape, 2)
}

func TestConvert_OperationRequiresReturnType(t *testing.T) {
	err := convertErr(t, "op foo() { }")
	requireCode(t, err, diag.CodeSyntaxMissingReturn)
}

func TestConvert_InvalidDeclarationKeyword(t *testing.T) {
	err := convertErr(t, "def foo() { }")
	requireCode(t, err, diag.CodeSyntaxInvalidKeyword)
}

func TestConvert_UnnamedArgument(t *testing.T) {
	err := convertErr(t, "proc foo(input int32 x, output float64) { }")
	requireCode(t, err, diag.CodeSyntaxUnnamedArgument)
}

func TestConvert_QualifiedArguments(t *testing.T) {
	proc := onlyStmt(t, "proc foo(input int32[m, n] x, output float64 y) { }").(*ast.Procedure)
	require.Len(t, proc.Args, 2)

	x := proc.Args[0]
	require.Equal(t, "x", x.Name.Hint())
	require.Equal(t, ir.QualifierInput, x.Type.Qualifier)
	numerical, ok := x.Type.Base.(*ast.NumericalType)
	require.True(t, ok)
	core, ok := numerical.DataType.(*ast.CoreType)
	require.True(t, ok)
	require.Equal(t, ir.Int32, core.Core)
	require.Len(t, numerical.Shape, 2)

	y := proc.Args[1]
	require.Equal(t, "y", y.Name.Hint())
	require.Equal(t, ir.QualifierOutput, y.Type.Qualifier)
	numerical, ok = y.Type.Base.(*ast.NumericalType)
	require.True(t, ok)
	core, ok = numerical.DataType.(*ast.CoreType)
	require.True(t, ok)
	require.Equal(t, ir.Float64, core.Core)
	require.Empty(t, numerical.Shape)
}

func TestConvert_TemplateIdentity(t *testing.T) {
	src := `op foo<T>(input T[m, n] x) -> output T {
	return bar<T>(x);
}`
	op := onlyStmt(t, src).(*ast.Operation)
	require.Len(t, op.Templates, 1)
	declared := op.Templates[0].Ident

	argType := op.Args[0].Type.Base.(*ast.NumericalType)
	argTemplate, ok := argType.DataType.(*ast.TemplateDataType)
	require.True(t, ok)
	require.Same(t, declared, argTemplate.Ident)

	retType := op.Return.Base.(*ast.NumericalType)
	retTemplate, ok := retType.DataType.(*ast.TemplateDataType)
	require.True(t, ok)
	require.Same(t, declared, retTemplate.Ident)

	ret := op.Body[0].(*ast.ReturnStatement)
	call := ret.Value.(*ast.FunctionExpr)
	require.Len(t, call.TemplateTypes, 1)
	callTemplate, ok := call.TemplateTypes[0].(*ast.TemplateDataType)
	require.True(t, ok)
	require.Same(t, declared, callTemplate.Ident)
}

func TestConvert_TemplateScopesAreIndependent(t *testing.T) {
	src := `proc foo<T>(input T x) { }
proc bar<T>(input T x) { }`
	module := convert(t, src)
	require.Len(t, module.Statements, 2)

	first := module.Statements[0].(*ast.Procedure).Templates[0].Ident
	second := module.Statements[1].(*ast.Procedure).Templates[0].Ident
	require.NotEqual(t, first.ID(), second.ID())
}

func TestConvert_UndeclaredTemplateBindsFresh(t *testing.T) {
	// An unknown type spelling is a template parameter; repeated
	// occurrences in the same declaration share one identity.
	src := "proc foo(input T x, output T y) { }"
	proc := onlyStmt(t, src).(*ast.Procedure)

	xt := proc.Args[0].Type.Base.(*ast.NumericalType).DataType.(*ast.TemplateDataType)
	yt := proc.Args[1].Type.Base.(*ast.NumericalType).DataType.(*ast.TemplateDataType)
	require.Same(t, xt.Ident, yt.Ident)
}

func TestConvert_FunctionExprForms(t *testing.T) {
	tests := []struct {
		call      string
		templates int
		indices   int
		args      int
	}{
		{"foo()", 0, 0, 0},
		{"foo(a)", 0, 0, 1},
		{"foo(a, b)", 0, 0, 2},
		{"foo<>()", 0, 0, 0},
		{"foo<int32>(a)", 1, 0, 1},
		{"foo<int32, T>(a)", 2, 0, 1},
		{"foo[]()", 0, 0, 0},
		{"foo[i](a)", 0, 1, 1},
		{"foo[i, j](a)", 0, 2, 1},
		{"foo<int32>[i](a)", 1, 1, 1},
		{"foo<>[](a)", 0, 0, 1},
		{"module.method()", 0, 0, 0},
		{"module.method(a)", 0, 0, 1},
		{"module.method<int32>(a)", 1, 0, 1},
		{"module.method[i](a)", 0, 1, 1},
		{"module.method<int32>[i](a, b)", 1, 1, 2},
	}

	for _, tt := range tests {
		src := fmt.Sprintf("x = %s;", tt.call)
		call, ok := rhs(t, src).(*ast.FunctionExpr)
		require.True(t, ok, "call %q", tt.call)

		callee, ok := call.Function.(*ast.IdentifierExpr)
		require.True(t, ok, "call %q", tt.call)
		require.NotEmpty(t, callee.Ident.Hint(), "call %q", tt.call)

		// Absent argument lists convert to empty, never nil.
		require.NotNil(t, call.TemplateTypes, "call %q", tt.call)
		require.NotNil(t, call.Indices, "call %q", tt.call)
		require.NotNil(t, call.Args, "call %q", tt.call)

		require.Len(t, call.TemplateTypes, tt.templates, "call %q", tt.call)
		require.Len(t, call.Indices, tt.indices, "call %q", tt.call)
		require.Len(t, call.Args, tt.args, "call %q", tt.call)
	}
}

func TestConvert_DottedCallee(t *testing.T) {
	call := rhs(t, "x = module.method(a);").(*ast.FunctionExpr)
	callee := call.Function.(*ast.IdentifierExpr)
	require.Equal(t, "module.method", callee.Ident.Hint())
}

func TestConvert_TupleAccess(t *testing.T) {
	access, ok := rhs(t, "x = A.1;").(*ast.TupleAccessExpr)
	require.True(t, ok)
	require.Equal(t, int64(1), access.Index)
	ident, ok := access.Tuple.(*ast.IdentifierExpr)
	require.True(t, ok)
	require.Equal(t, "A", ident.Ident.Hint())
}

func TestConvert_TupleAccessOnCall(t *testing.T) {
	access, ok := rhs(t, "x = f().1;").(*ast.TupleAccessExpr)
	require.True(t, ok)
	require.Equal(t, int64(1), access.Index)
	_, ok = access.Tuple.(*ast.FunctionExpr)
	require.True(t, ok)
}

func TestConvert_ArrayAccessAssignment(t *testing.T) {
	stmt := onlyStmt(t, "A[i, j] = 1;").(*ast.ExpressionStatement)

	access, ok := stmt.Left.(*ast.ArrayAccessExpr)
	require.True(t, ok)
	require.Len(t, access.Indices, 2)

	lit, ok := stmt.Right.(*ast.IntLiteral)
	require.True(t, ok)
	require.Equal(t, int64(1), lit.Value)
}

func TestConvert_TupleExpressions(t *testing.T) {
	tuple, ok := rhs(t, "x = (a, b);").(*ast.TupleExpr)
	require.True(t, ok)
	require.Len(t, tuple.Exprs, 2)

	// A trailing comma makes a one-element tuple.
	tuple, ok = rhs(t, "x = (a,);").(*ast.TupleExpr)
	require.True(t, ok)
	require.Len(t, tuple.Exprs, 1)

	// Plain grouping disappears in conversion.
	_, ok = rhs(t, "x = (a);").(*ast.IdentifierExpr)
	require.True(t, ok)
}

func TestConvert_Declarations(t *testing.T) {
	decl := onlyStmt(t, "temp int32 x;").(*ast.DeclarationStatement)
	require.Equal(t, "x", decl.Name.Hint())
	require.Equal(t, ir.QualifierTemp, decl.Type.Qualifier)
	require.Nil(t, decl.Value)

	decl = onlyStmt(t, "param float32 w = 1.5;").(*ast.DeclarationStatement)
	require.Equal(t, ir.QualifierParam, decl.Type.Qualifier)
	lit, ok := decl.Value.(*ast.FloatLiteral)
	require.True(t, ok)
	require.Equal(t, 1.5, lit.Value)
}

func TestConvert_IndexDeclaration(t *testing.T) {
	decl := onlyStmt(t, "temp index[1:m] i;").(*ast.DeclarationStatement)
	indexType, ok := decl.Type.Base.(*ast.IndexType)
	require.True(t, ok)

	lower, ok := indexType.Lower.(*ast.IntLiteral)
	require.True(t, ok)
	require.Equal(t, int64(1), lower.Value)
	_, ok = indexType.Upper.(*ast.IdentifierExpr)
	require.True(t, ok)
	require.Nil(t, indexType.Stride)

	decl = onlyStmt(t, "temp index[1:m:2] i;").(*ast.DeclarationStatement)
	indexType = decl.Type.Base.(*ast.IndexType)
	require.NotNil(t, indexType.Stride)
}

func TestConvert_TupleTypeDeclaration(t *testing.T) {
	for _, src := range []string{
		"temp tuple[int32[m, n], int32] t;",
		"temp tuple[int32[m, n], int32,] t;",
	} {
		decl := onlyStmt(t, src).(*ast.DeclarationStatement)
		tupleType, ok := decl.Type.Base.(*ast.TupleType)
		require.True(t, ok, "src %q", src)
		require.Len(t, tupleType.Types, 2, "src %q", src)
	}
}

func TestConvert_ControlFlow(t *testing.T) {
	src := `proc foo(input int32 c) {
	if (c > 0) {
		x = 1;
	} else {
		x = 2;
	}
	forall (i) {
		A[i] = 0;
	}
	return x;
}`
	proc := onlyStmt(t, src).(*ast.Procedure)
	require.Len(t, proc.Body, 3)

	sel, ok := proc.Body[0].(*ast.SelectionStatement)
	require.True(t, ok)
	require.Len(t, sel.TrueBody, 1)
	require.Len(t, sel.FalseBody, 1)
	_, ok = sel.Condition.(*ast.BinaryExpr)
	require.True(t, ok)

	loop, ok := proc.Body[1].(*ast.ForAllStatement)
	require.True(t, ok)
	require.Len(t, loop.Body, 1)

	_, ok = proc.Body[2].(*ast.ReturnStatement)
	require.True(t, ok)
}

func TestConvert_SelectionWithoutElse(t *testing.T) {
	sel := onlyStmt(t, "if (c) { x = 1; }").(*ast.SelectionStatement)
	require.Len(t, sel.TrueBody, 1)
	require.Empty(t, sel.FalseBody)
}

func TestConvert_IntLiterals(t *testing.T) {
	tests := []struct {
		raw   string
		value int64
	}{
		{"0", 0},
		{"42", 42},
		{"0b0101", 5},
		{"0B0101", 5},
		{"0o17", 15},
		{"0O17", 15},
		{"0x1f", 31},
		{"0X1F", 31},
	}

	for _, tt := range tests {
		lit, ok := rhs(t, fmt.Sprintf("x = %s;", tt.raw)).(*ast.IntLiteral)
		require.True(t, ok, "raw %q", tt.raw)
		require.Equal(t, tt.value, lit.Value, "raw %q", tt.raw)
	}
}

func TestConvert_FloatLiterals(t *testing.T) {
	tests := []struct {
		raw   string
		value float64
	}{
		{"1.0", 1.0},
		{".2", 0.2},
		{"1.", 1.0},
		{"1e2", 100.0},
		{"1.2e3", 1200.0},
		{"1.2e-3", 0.0012},
	}

	for _, tt := range tests {
		lit, ok := rhs(t, fmt.Sprintf("x = %s;", tt.raw)).(*ast.FloatLiteral)
		require.True(t, ok, "raw %q", tt.raw)
		require.Equal(t, tt.value, lit.Value, "raw %q", tt.raw)
	}
}

func TestConvert_ComplexLiterals(t *testing.T) {
	tests := []struct {
		raw   string
		value complex128
	}{
		{"1j", complex(0, 1)},
		{"2.5J", complex(0, 2.5)},
		{".5j", complex(0, 0.5)},
		{"0x2j", complex(0, 2)},
	}

	for _, tt := range tests {
		lit, ok := rhs(t, fmt.Sprintf("x = %s;", tt.raw)).(*ast.ComplexLiteral)
		require.True(t, ok, "raw %q", tt.raw)
		require.Equal(t, tt.value, lit.Value, "raw %q", tt.raw)
	}
}

func TestConvert_MalformedLiteral(t *testing.T) {
	err := convertErr(t, "x = 0b2;")
	requireCode(t, err, diag.CodeLiteralMalformed)
}

func TestConvert_IntegerOverflow(t *testing.T) {
	err := convertErr(t, "x = 0xffffffffffffffff;")
	requireCode(t, err, diag.CodeLiteralOverflow)
}

func TestConvert_UnaryOperators(t *testing.T) {
	for _, op := range ast.UnaryOperators {
		src := fmt.Sprintf("x = %sy;", op)
		unary, ok := rhs(t, src).(*ast.UnaryExpr)
		require.True(t, ok, "op %q", op)
		require.Equal(t, op, unary.Op, "op %q", op)
		_, ok = unary.Operand.(*ast.IdentifierExpr)
		require.True(t, ok, "op %q", op)
	}
}

func TestConvert_BinaryOperators(t *testing.T) {
	for _, op := range ast.BinaryOperators {
		src := fmt.Sprintf("x = a %s b;", op)
		binary, ok := rhs(t, src).(*ast.BinaryExpr)
		require.True(t, ok, "op %q", op)
		require.Equal(t, op, binary.Op, "op %q", op)
	}
}

func TestConvert_Ternary(t *testing.T) {
	ternary, ok := rhs(t, "x = a ? b : c;").(*ast.TernaryExpr)
	require.True(t, ok)
	_, ok = ternary.Condition.(*ast.IdentifierExpr)
	require.True(t, ok)
}

func TestConvert_Precedence(t *testing.T) {
	binary := rhs(t, "x = a + b * c;").(*ast.BinaryExpr)
	require.Equal(t, ast.BinaryAdd, binary.Op)
	right, ok := binary.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinaryMultiply, right.Op)
}

func TestConvert_PowerRightAssociative(t *testing.T) {
	binary := rhs(t, "x = a ** b ** c;").(*ast.BinaryExpr)
	require.Equal(t, ast.BinaryPower, binary.Op)
	_, ok := binary.Left.(*ast.IdentifierExpr)
	require.True(t, ok)
	right, ok := binary.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ast.BinaryPower, right.Op)
}

func TestConvert_IdentifierOccurrencesAreDistinct(t *testing.T) {
	stmt := onlyStmt(t, "a = a;").(*ast.ExpressionStatement)
	left := stmt.Left.(*ast.IdentifierExpr)
	right := stmt.Right.(*ast.IdentifierExpr)
	require.Equal(t, left.Ident.Hint(), right.Ident.Hint())
	require.NotEqual(t, left.Ident.ID(), right.Ident.ID())
}

func TestConvert_SpansSurvive(t *testing.T) {
	module := convert(t, "import foo;")
	stmt := module.Statements[0]
	require.Equal(t, 1, stmt.Span().Line)
	require.Equal(t, 1, stmt.Span().Column)
}
